//go:build linux || darwin

package ioq

import "golang.org/x/sys/unix"

// AtFDCWD is the base descriptor meaning "relative to the current working
// directory", accepted directly as OpenDir's dfd argument.
const AtFDCWD = unix.AT_FDCWD

// ErrCanceled is the error reported by an Entry whose submission was
// drained by Cancel before a worker dispatched it.
var ErrCanceled error = unix.ECANCELED

// dispatch performs e's operation synchronously, populating e.ret and
// e.err. It is called from a worker goroutine only; e is otherwise
// unreachable from any other goroutine at this point.
func dispatch(e *Entry) {
	switch e.op {
	case OpClose:
		dispatchClose(e)
	case OpOpenDir:
		dispatchOpenDir(e)
	case OpCloseDir:
		dispatchCloseDir(e)
	default:
		panic("ioq: unknown op")
	}
}

func dispatchClose(e *Entry) {
	if err := unix.Close(e.fd); err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.ret = 0
}

func dispatchOpenDir(e *Entry) {
	fd, err := unix.Openat(e.fd, e.path, unix.O_DIRECTORY|unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.dir.fd = fd
	e.ret = 0
}

func dispatchCloseDir(e *Entry) {
	if err := unix.Close(e.dir.fd); err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.dir.fd = -1
	e.ret = 0
}

//go:build windows

package ioq

import "golang.org/x/sys/windows"

// AtFDCWD has no directory-relative-open analogue on Windows; OpenDir
// treats any dfd as "resolve path relative to the process's current
// directory", matching os.Open's own behavior on this platform.
const AtFDCWD = -1

// ErrCanceled is the error reported by an Entry whose submission was
// drained by Cancel before a worker dispatched it.
var ErrCanceled error = windows.ERROR_CANCELLED

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
	if err := windows.CloseHandle(windows.Handle(e.fd)); err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.ret = 0
}

func dispatchOpenDir(e *Entry) {
	pathPtr, err := windows.UTF16PtrFromString(e.path)
	if err != nil {
		e.ret, e.err = -1, err
		return
	}
	h, err := windows.CreateFile(
		pathPtr,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.dir.fd = int(h)
	e.ret = 0
}

func dispatchCloseDir(e *Entry) {
	if err := windows.CloseHandle(windows.Handle(e.dir.fd)); err != nil {
		e.ret, e.err = -1, err
		return
	}
	e.dir.fd = -1
	e.ret = 0
}

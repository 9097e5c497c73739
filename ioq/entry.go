package ioq

// Op identifies which blocking operation an Entry carries.
type Op uint8

const (
	// OpClose closes a plain file descriptor.
	OpClose Op = iota
	// OpOpenDir opens a directory relative to a base descriptor.
	OpOpenDir
	// OpCloseDir closes a directory descriptor previously opened by
	// OpOpenDir.
	OpCloseDir
)

func (op Op) String() string {
	switch op {
	case OpClose:
		return "close"
	case OpOpenDir:
		return "opendir"
	case OpCloseDir:
		return "closedir"
	default:
		return "unknown"
	}
}

// Dir holds a directory file descriptor populated by OpOpenDir and
// consumed by OpCloseDir. The zero value is not open; submit it to
// Queue.OpenDir before reading Fd.
type Dir struct {
	fd int
}

// Fd returns the underlying directory descriptor. It is -1 for a nil Dir
// and after a successful CloseDir; a zero Dir that was never opened
// reports 0.
func (d *Dir) Fd() int {
	if d == nil {
		return -1
	}
	return d.fd
}

// Entry is one pool-owned request/completion slot. Entries are obtained
// implicitly by the submission methods (Close/OpenDir/CloseDir) and
// returned by Pop/TryPop; the driver must eventually pass every popped
// Entry to Queue.Free.
type Entry struct { // betteralign:ignore
	op     Op
	cookie any

	// submission fields, populated by the submitting call.
	fd   int    // OpClose: fd to close. OpOpenDir: base dfd.
	path string // OpOpenDir: relative path.
	dir  *Dir   // OpOpenDir: destination. OpCloseDir: directory to close.

	// completion fields, populated by dispatch or Cancel.
	ret int
	err error

	next *Entry // intrusive link for the pool's free stack
}

// Op reports which operation this entry carried.
func (e *Entry) Op() Op { return e.op }

// Ret returns the raw syscall-style result: 0 on success, -1 on failure
// (inspect Err for the reason).
func (e *Entry) Ret() int { return e.ret }

// Err returns the error associated with a failed or canceled operation, or
// nil on success.
func (e *Entry) Err() error { return e.err }

// Cookie returns the caller-supplied value passed to the submission call
// that produced this entry, for correlating completions with requests.
func (e *Entry) Cookie() any { return e.cookie }

func (e *Entry) reset() {
	e.op = OpClose
	e.cookie = nil
	e.fd = -1
	e.path = ""
	e.dir = nil
	e.ret = 0
	e.err = nil
	e.next = nil
}

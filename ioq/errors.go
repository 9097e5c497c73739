package ioq

import "errors"

// ErrQueueFull is returned by a submission method when every entry in the
// pool is currently outstanding (submitted, in flight, or completed and not
// yet passed to Free).
var ErrQueueFull = errors.New("ioq: queue full")

// ErrQueueDestroyed is returned by a submission method called after
// Destroy.
var ErrQueueDestroyed = errors.New("ioq: queue destroyed")

// ErrInvalidConfig is returned by Create when depth or nthreads is not
// positive.
var ErrInvalidConfig = errors.New("ioq: depth and nthreads must be positive")

// ErrCanceled is the error reported by an Entry whose submission was
// drained by Cancel before a worker dispatched it. It is defined
// per-platform (dispatch_unix.go, dispatch_windows.go) so this file stays
// free of platform-specific imports.

// Package ioq implements an asynchronous I/O request queue that off-loads
// blocking filesystem operations (closing a file descriptor, opening or
// closing a directory) from a caller's "driver" goroutine onto a pool of
// background workers, returning completions through a bounded concurrent
// queue.
//
// # Overview
//
// A [Queue] owns a fixed-capacity pool of [Entry] values (its depth), a
// submission queue, a completion queue, and nthreads worker goroutines.
// Submitting an operation ([Queue.Close], [Queue.OpenDir], [Queue.CloseDir])
// reserves a free entry, populates it, and hands it to a worker; the driver
// later retrieves completed entries with [Queue.Pop] or [Queue.TryPop] and
// returns them to the pool with [Queue.Free].
//
// # Thread Safety
//
// Exactly one goroutine may act as the "driver" — the caller of Pop,
// TryPop, Free, Cancel, and Destroy — at a time (the role may be handed
// off between goroutines given a happens-before edge, but never shared
// concurrently; calling TryPop concurrently with another goroutine's Pop is
// not supported). Submission methods (Close/OpenDir/CloseDir) may be
// called from the driver goroutine or any other, so long as the driver
// role itself stays single-owner.
//
// # Example
//
//	q, err := ioq.Create(64, 4)
//	if err != nil { ... }
//	defer q.Destroy()
//
//	var dir ioq.Dir
//	if err := q.OpenDir(&dir, ioq.AtFDCWD, "subdir", 0xAA); err != nil { ... }
//
//	e := q.Pop()
//	if e.Ret() != 0 { ... handle e.Err() ... }
//	q.Free(e)
package ioq

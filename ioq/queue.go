package ioq

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Queue is a bounded pool of depth Entry values, a submission ring, a
// completion ring, and nthreads worker goroutines that drain the former
// into the latter. See the package doc for the single-driver-goroutine
// contract.
type Queue struct { // betteralign:ignore
	mu        sync.Mutex
	entries   []Entry // backing storage for the whole pool, allocated once
	freeHead  *Entry  // free stack, linked through Entry.next
	freeCount int     // entries currently on the free stack
	destroyed bool

	depth    int
	nthreads int

	submission *ring
	completion *ring

	log     zerolog.Logger
	baseCtx context.Context
	cancel  context.CancelFunc
	workers interface{ Wait() error }

	closeOnce sync.Once
}

// Create builds a Queue with depth pre-allocated entries and nthreads
// dispatch workers. The entry pool is plain Go-managed memory rather than
// arena-backed: an Entry carries ordinary Go pointers (a cookie, a path
// string, a *Dir, an error), and arena.Arena's chunks are opaque to the
// garbage collector, so storing pointer-bearing values in one would be
// unsound (see DESIGN.md).
func Create(depth, nthreads int, opts ...QueueOption) (*Queue, error) {
	if depth <= 0 || nthreads <= 0 {
		return nil, ErrInvalidConfig
	}

	q := &Queue{
		entries:  make([]Entry, depth),
		depth:    depth,
		nthreads: nthreads,
		log:      defaultLogger(),
		baseCtx:  context.Background(),
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	for i := range q.entries {
		q.entries[i].reset()
		if i+1 < len(q.entries) {
			q.entries[i].next = &q.entries[i+1]
		}
	}
	q.freeHead = &q.entries[0]
	q.freeCount = depth

	q.submission = newRing(depth)
	q.completion = newRing(depth)

	ctx, cancel := context.WithCancel(q.baseCtx)
	q.cancel = cancel
	g, gctx := q.startWorkers(ctx, nthreads)
	q.workers = g
	go q.watchContext(gctx)

	q.log.Debug().Int("depth", depth).Int("nthreads", nthreads).Msg("queue created")
	return q, nil
}

// Capacity reports the number of entries currently free in the pool,
// i.e. neither submitted, in flight, nor awaiting Pop/Free.
func (q *Queue) Capacity() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.freeCount
}

// Len reports the number of entries currently submitted, in flight, or
// completed and awaiting Pop/Free: everything not currently free.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.depth - q.freeCount
}

// Wait blocks until every worker goroutine has returned, which happens
// once the submission ring is closed and drained (via Destroy) or a
// worker panics. It returns the first non-nil error reported by any
// worker. Wait is typically called after Destroy, or after canceling the
// context passed to WithContext.
func (q *Queue) Wait() error { return q.workers.Wait() }

// Close submits a close(fd) operation, tagged with cookie.
func (q *Queue) Close(fd int, cookie any) error {
	return q.submit(OpClose, fd, "", nil, cookie)
}

// OpenDir submits an operation that opens path relative to dfd (or
// AtFDCWD) and stores the resulting descriptor in dir on completion.
func (q *Queue) OpenDir(dir *Dir, dfd int, path string, cookie any) error {
	if dir == nil {
		panic("ioq: OpenDir requires a non-nil Dir")
	}
	return q.submit(OpOpenDir, dfd, path, dir, cookie)
}

// CloseDir submits an operation that closes a directory descriptor
// previously populated by OpenDir.
func (q *Queue) CloseDir(dir *Dir, cookie any) error {
	if dir == nil {
		panic("ioq: CloseDir requires a non-nil Dir")
	}
	return q.submit(OpCloseDir, -1, "", dir, cookie)
}

func (q *Queue) submit(op Op, fd int, path string, dir *Dir, cookie any) error {
	e, err := q.reserve()
	if err != nil {
		return err
	}
	e.op = op
	e.fd = fd
	e.path = path
	e.dir = dir
	e.cookie = cookie
	q.submission.Push(e)
	q.log.Debug().Str("op", op.String()).Msg("submitted")
	return nil
}

func (q *Queue) reserve() (*Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.destroyed {
		return nil, ErrQueueDestroyed
	}
	if q.freeHead == nil {
		return nil, ErrQueueFull
	}
	e := q.freeHead
	q.freeHead = e.next
	e.next = nil
	q.freeCount--
	return e, nil
}

func (q *Queue) release(e *Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e.reset()
	e.next = q.freeHead
	q.freeHead = e
	q.freeCount++
}

// Pop blocks until a completed entry is available, or the Queue has been
// destroyed and fully drained, in which case it returns nil.
func (q *Queue) Pop() *Entry { return q.completion.Pop() }

// TryPop returns a completed entry without blocking, or nil if none is
// currently available. Must not be called concurrently with Pop.
func (q *Queue) TryPop() *Entry { return q.completion.TryPop() }

// Free returns a popped Entry to the pool. e must not be used afterward.
func (q *Queue) Free(e *Entry) {
	if e == nil {
		return
	}
	q.release(e)
}

// Cancel drains every submission not yet picked up by a worker, completing
// each with ErrCanceled instead of dispatching it. Entries already handed
// to a worker run to completion normally.
func (q *Queue) Cancel() {
	for {
		e := q.submission.TryPop()
		if e == nil {
			return
		}
		e.ret = -1
		e.err = ErrCanceled
		q.completion.Push(e)
	}
}

// Destroy cancels pending submissions, stops accepting new ones, joins
// every worker, and releases every entry still sitting in the completion
// ring back to the pool. Destroy must not be called concurrently with a
// submission method still in flight on another goroutine; the caller is
// responsible for quiescing submitters first, exactly as with Cancel.
// It is safe to call more than once; only the first call has effect, and
// every call returns the same error.
func (q *Queue) Destroy() error {
	q.closeOnce.Do(func() {
		q.Cancel()

		q.mu.Lock()
		q.destroyed = true
		q.mu.Unlock()

		q.submission.Close()
		q.workers.Wait()
		q.cancel()

		for {
			e := q.completion.TryPop()
			if e == nil {
				break
			}
			q.release(e)
		}
		q.completion.Close()
		q.log.Debug().Msg("queue destroyed")
	})
	// The errgroup keeps its first error, so every call reports the same one.
	return q.workers.Wait()
}

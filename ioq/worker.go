package ioq

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// startWorkers launches n dispatch-loop goroutines bound to ctx via an
// errgroup: a single Wait joins every worker and surfaces the first
// non-nil error, including one converted from a recovered panic. The
// returned context is done as soon as either ctx is canceled or any
// worker returns an error, giving the caller a single signal to tear
// the Queue down on.
func (q *Queue) startWorkers(ctx context.Context, n int) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(q.runWorker)
	}
	return g, gctx
}

// runWorker repeatedly pops a submitted entry, dispatches it, and pushes
// the completed entry, until the submission ring is closed and drained.
// A panic during dispatch is recovered and turned into an error so it
// surfaces through Queue.Wait instead of crashing the process.
func (q *Queue) runWorker() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ioq: worker panic: %v", r)
		}
	}()
	for {
		e := q.submission.Pop()
		if e == nil {
			return nil
		}
		q.log.Debug().Str("op", e.op.String()).Msg("dispatch")
		dispatch(e)
		q.completion.Push(e)
	}
}

// watchContext calls Destroy as soon as ctx is done, making external
// cancellation behave like an explicit Destroy call. It returns once ctx
// is done; the Queue may already be destroyed by the time it does.
func (q *Queue) watchContext(ctx context.Context) {
	<-ctx.Done()
	q.Destroy()
}

package ioq

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// QueueOption configures a Queue at Create time.
type QueueOption func(*Queue) error

// WithLogger attaches a structured logger; the Queue emits debug-level
// events through it for queue creation and destruction, each submission,
// and each worker dispatch. The default is a no-op logger.
func WithLogger(l zerolog.Logger) QueueOption {
	return func(q *Queue) error {
		q.log = l
		return nil
	}
}

// WithContext binds the Queue's worker pool to ctx: canceling ctx makes the
// Queue call Destroy on itself. The default is context.Background().
func WithContext(ctx context.Context) QueueOption {
	return func(q *Queue) error {
		if ctx == nil {
			return errors.New("ioq: nil context")
		}
		q.baseCtx = ctx
		return nil
	}
}

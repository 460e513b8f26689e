package background

import (
	"context"
	"log/slog"
	"sync"
)

// Runner executes detached tasks scheduled off a request's response path.
// Tasks run to completion regardless of whether the client is still
// connected, and their errors are logged and swallowed, never surfaced.
// Wait lets tests and shutdown observe that scheduled tasks finished.
type Runner struct {
	logger *slog.Logger
	wg     sync.WaitGroup
}

// New creates a new background runner
func New(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Go schedules fn to run detached. The task gets a fresh context so that
// the originating request's cancellation cannot abort it.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("background task panicked",
					slog.String("task", name),
					slog.Any("panic", p),
				)
			}
		}()

		if err := fn(context.Background()); err != nil {
			r.logger.Error("background task failed",
				slog.String("task", name),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until all scheduled tasks have completed
func (r *Runner) Wait() {
	r.wg.Wait()
}

package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Runner executes tasks concurrently, one goroutine per task, and rejoins
// the Dispatcher to complete them. It does not queue or serialize tasks:
// two submissions run side by side and complete in whatever order their
// Execute phases finish. There is no cancellation; a submitted task runs to
// completion or failure.
type Runner struct {
	dispatcher *Dispatcher
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewRunner creates a Runner that completes tasks on dispatcher.
func NewRunner(dispatcher *Dispatcher, logger *slog.Logger) *Runner {
	return &Runner{
		dispatcher: dispatcher,
		logger:     logger.With("component", "task_runner"),
	}
}

// Submit starts t in the background and returns a handle to observe it.
// ctx supplies values such as the logger; its cancellation is ignored.
func (r *Runner) Submit(ctx context.Context, t Task) *Handle {
	h := newHandle(t)
	ctx = context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.process(ctx, t, h)
	}()

	return h
}

// Wait blocks until every submitted task has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) process(ctx context.Context, t Task, h *Handle) {
	logger := r.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
	)

	h.setStatus(TaskStatusProcessing)
	logger.Info("processing task")

	err := r.execute(ctx, t)
	if err == nil {
		err = r.dispatcher.Do(ctx, t.Complete)
	}

	if err != nil {
		logger.Error("task failed", "error", err)
	} else {
		logger.Info("task completed successfully")
	}

	h.finish(err)
}

func (r *Runner) execute(ctx context.Context, t Task) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panicked: %v", rec)
		}
	}()
	return t.Execute(ctx)
}

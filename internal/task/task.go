package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// TaskStatus represents the current state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Task type constants
const (
	// TaskTypeStudyGuideGeneration generates a study guide and appends it to the store.
	TaskTypeStudyGuideGeneration = "study_guide_generation"
)

// Task is a unit of asynchronous work with two phases: Execute runs off the
// dispatcher and may block on I/O, then Complete runs on the dispatcher to
// publish the outcome into UI-owned state.
type Task interface {
	// ID returns the task's unique identifier
	ID() uuid.UUID

	// Type returns the task type identifier
	Type() string

	// Execute runs the blocking part of the task
	Execute(ctx context.Context) error

	// Complete publishes the result. It is only called after Execute succeeds.
	Complete(ctx context.Context) error
}

// Handle tracks one submitted task.
type Handle struct {
	id       uuid.UUID
	taskType string

	mu     sync.RWMutex
	status TaskStatus
	err    error
	done   chan struct{}
}

func newHandle(t Task) *Handle {
	return &Handle{
		id:       t.ID(),
		taskType: t.Type(),
		status:   TaskStatusPending,
		done:     make(chan struct{}),
	}
}

// ID returns the tracked task's ID.
func (h *Handle) ID() uuid.UUID { return h.id }

// Type returns the tracked task's type.
func (h *Handle) Type() string { return h.taskType }

// Status returns the task's current status.
func (h *Handle) Status() TaskStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Err returns the failure cause once the task has failed, nil otherwise.
func (h *Handle) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Done is closed when the task reaches a terminal status.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the task finishes or ctx is done. It returns the task's
// error, or ctx.Err() if waiting was abandoned. Abandoning the wait does not
// stop the task.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handle) setStatus(status TaskStatus) {
	h.mu.Lock()
	h.status = status
	h.mu.Unlock()
}

func (h *Handle) finish(err error) {
	h.mu.Lock()
	if err != nil {
		h.status = TaskStatusFailed
		h.err = err
	} else {
		h.status = TaskStatusCompleted
	}
	h.mu.Unlock()
	close(h.done)
}

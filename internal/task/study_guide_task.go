package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// Common errors
var (
	ErrNilGenerator = errors.New("study guide generator cannot be nil")
	ErrNilStore     = errors.New("study guide store cannot be nil")
	ErrNilLogger    = errors.New("logger cannot be nil")
	ErrNoResult     = errors.New("task has no result to publish")
)

// StudyGuideGenerator produces a study guide for a subject/topic pair.
type StudyGuideGenerator interface {
	GenerateStudyGuide(ctx context.Context, subject, topic string) (*domain.StudyGuide, error)
}

// StudyGuideSaver receives the finished guide.
type StudyGuideSaver interface {
	AddStudyGuide(ctx context.Context, guide *domain.StudyGuide) error
}

// StudyGuideTask generates a study guide off the dispatcher and appends it to
// the store on the dispatcher.
type StudyGuideTask struct {
	id        uuid.UUID
	subject   string
	topic     string
	generator StudyGuideGenerator
	saver     StudyGuideSaver
	logger    *slog.Logger

	mu    sync.Mutex
	guide *domain.StudyGuide
}

var _ Task = (*StudyGuideTask)(nil)

// NewStudyGuideTask creates a new study guide generation task
func NewStudyGuideTask(
	subject, topic string,
	generator StudyGuideGenerator,
	saver StudyGuideSaver,
	logger *slog.Logger,
) (*StudyGuideTask, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if saver == nil {
		return nil, ErrNilStore
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	id := uuid.New()
	return &StudyGuideTask{
		id:        id,
		subject:   subject,
		topic:     topic,
		generator: generator,
		saver:     saver,
		logger:    logger.With("task_type", TaskTypeStudyGuideGeneration, "task_id", id),
	}, nil
}

// ID returns the task's unique identifier
func (t *StudyGuideTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *StudyGuideTask) Type() string {
	return TaskTypeStudyGuideGeneration
}

// Execute generates the guide. This is where the network call happens.
func (t *StudyGuideTask) Execute(ctx context.Context) error {
	t.logger.InfoContext(ctx, "generating study guide", "subject", t.subject, "topic", t.topic)

	guide, err := t.generator.GenerateStudyGuide(ctx, t.subject, t.topic)
	if err != nil {
		return fmt.Errorf("failed to generate study guide: %w", err)
	}

	t.mu.Lock()
	t.guide = guide
	t.mu.Unlock()
	return nil
}

// Complete appends the generated guide to the store.
func (t *StudyGuideTask) Complete(ctx context.Context) error {
	guide := t.Result()
	if guide == nil {
		return ErrNoResult
	}
	if err := t.saver.AddStudyGuide(ctx, guide); err != nil {
		return fmt.Errorf("failed to store study guide: %w", err)
	}
	t.logger.InfoContext(ctx, "study guide stored",
		"guide_id", guide.ID,
		"flashcard_count", len(guide.Flashcards))
	return nil
}

// Result returns the generated guide once Execute has succeeded.
func (t *StudyGuideTask) Result() *domain.StudyGuide {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.guide
}

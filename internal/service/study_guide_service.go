package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/store"
	"github.com/phrazzld/flipiq/internal/task"
)

// TaskRunner starts background tasks. task.Runner satisfies it.
type TaskRunner interface {
	// Submit starts t in the background and returns a handle to observe it.
	Submit(ctx context.Context, t task.Task) *task.Handle
}

// StudyGuideService creates and reads study guides.
type StudyGuideService struct {
	generator task.StudyGuideGenerator
	guides    store.StudyGuideStore
	runner    TaskRunner
	logger    *slog.Logger
}

// NewStudyGuideService creates a StudyGuideService.
// It returns an error if any of the required dependencies are nil.
func NewStudyGuideService(
	generator task.StudyGuideGenerator,
	guides store.StudyGuideStore,
	runner TaskRunner,
	logger *slog.Logger,
) (*StudyGuideService, error) {
	if generator == nil {
		return nil, nilDependency("study_guide", "generator")
	}
	if guides == nil {
		return nil, nilDependency("study_guide", "guides")
	}
	if runner == nil {
		return nil, nilDependency("study_guide", "runner")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StudyGuideService{
		generator: generator,
		guides:    guides,
		runner:    runner,
		logger:    logger.With("component", "study_guide_service"),
	}, nil
}

// CreateStudyGuideAsync starts generating a guide for subject/topic and
// returns immediately. The guide is appended to the store on the dispatcher
// once generation finishes. Concurrent calls run side by side.
// Invalid input is rejected before anything is started.
func (s *StudyGuideService) CreateStudyGuideAsync(
	ctx context.Context,
	subject, topic string,
) (*task.Handle, error) {
	t, err := s.newTask(ctx, subject, topic)
	if err != nil {
		return nil, err
	}
	return s.runner.Submit(ctx, t), nil
}

// CreateStudyGuide generates a guide for subject/topic, appends it to the
// store and returns it. If ctx ends first the call returns ctx.Err() while
// the generation carries on and still appends its guide.
func (s *StudyGuideService) CreateStudyGuide(
	ctx context.Context,
	subject, topic string,
) (*domain.StudyGuide, error) {
	t, err := s.newTask(ctx, subject, topic)
	if err != nil {
		return nil, err
	}

	h := s.runner.Submit(ctx, t)
	if err := h.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "study guide creation failed",
			"task_id", h.ID(),
			"error", err)
		return nil, newServiceError("study_guide", "create_study_guide", "failed to create study guide", err)
	}

	guide := t.Result()
	s.logger.InfoContext(ctx, "study guide created",
		"guide_id", guide.ID,
		"subject", guide.Subject,
		"topic", guide.Topic)
	return guide, nil
}

// StudyGuides returns every stored guide in creation order.
func (s *StudyGuideService) StudyGuides(ctx context.Context) []*domain.StudyGuide {
	return s.guides.StudyGuides(ctx)
}

// StudyGuide returns the guide with the given ID or ErrStudyGuideNotFound.
func (s *StudyGuideService) StudyGuide(ctx context.Context, id uuid.UUID) (*domain.StudyGuide, error) {
	guide, err := s.guides.StudyGuide(ctx, id)
	if err != nil {
		s.logger.DebugContext(ctx, "study guide lookup failed", "guide_id", id, "error", err)
		return nil, newServiceError("study_guide", "get_study_guide", "failed to retrieve study guide", err)
	}
	return guide, nil
}

// SessionsOn returns the sessions of every guide scheduled on day in loc.
func (s *StudyGuideService) SessionsOn(ctx context.Context, day time.Time, loc *time.Location) []domain.StudySession {
	return s.guides.SessionsOn(ctx, day, loc)
}

func (s *StudyGuideService) newTask(ctx context.Context, subject, topic string) (*task.StudyGuideTask, error) {
	if err := domain.ValidateSubjectTopic(subject, topic); err != nil {
		s.logger.DebugContext(ctx, "rejected study guide request", "error", err)
		return nil, err
	}

	t, err := task.NewStudyGuideTask(subject, topic, s.generator, s.guides, s.logger)
	if err != nil {
		return nil, newServiceError("study_guide", "create_study_guide", "failed to create task", err)
	}
	return t, nil
}

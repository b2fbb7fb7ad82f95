package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/events"
	"github.com/phrazzld/flipiq/internal/redact"
)

// TextGenerator defines the boundary between the application core and an
// external text-generation API. Implementations make at most one request per
// call and never retry.
type TextGenerator interface {
	// GenerateContent sends prompt to the model and returns the text of the
	// first candidate. Errors are one of the kinds declared in errors.go.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Executor runs state mutations on the application's single UI thread.
// task.Dispatcher satisfies it.
type Executor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Status is the observable generation state.
type Status struct {
	Loading   bool   `json:"loading"`
	InFlight  int    `json:"in_flight"`
	LastError string `json:"last_error,omitempty"`
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for creation stamps and schedules.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone schedules are laid out in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithEmitter publishes every status change as a generation.status event.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(s *Service) { s.emitter = emitter }
}

// WithExecutor applies status changes through executor instead of inline.
func WithExecutor(executor Executor) Option {
	return func(s *Service) { s.executor = executor }
}

// Service produces study guides. Flashcard generation failures of any kind
// fall back to templated flashcards, so a valid subject/topic pair always
// yields a guide.
type Service struct {
	text     TextGenerator
	prompts  *PromptBuilder
	emitter  events.EventEmitter
	executor Executor
	logger   *slog.Logger
	now      func() time.Time
	loc      *time.Location

	mu     sync.Mutex
	status Status
}

// NewService creates a Service backed by text and prompts.
func NewService(text TextGenerator, prompts *PromptBuilder, logger *slog.Logger, opts ...Option) (*Service, error) {
	if text == nil {
		return nil, fmt.Errorf("%w: text generator cannot be nil", ErrInvalidConfig)
	}
	if prompts == nil {
		return nil, fmt.Errorf("%w: prompt builder cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Service{
		text:    text,
		prompts: prompts,
		logger:  logger.With("component", "generation_service"),
		now:     time.Now,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Status returns a snapshot of the generation state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// GenerateStudyGuide builds a guide for subject and topic. Only an empty
// subject or topic returns an error; every other failure is absorbed by the
// fallback flashcards and reported through Status.LastError.
func (s *Service) GenerateStudyGuide(ctx context.Context, subject, topic string) (*domain.StudyGuide, error) {
	if err := domain.ValidateSubjectTopic(subject, topic); err != nil {
		return nil, err
	}
	subject = strings.TrimSpace(subject)
	topic = strings.TrimSpace(topic)

	log := s.logger.With("subject", subject, "topic", topic)

	s.begin(ctx)
	var genErr error
	defer func() { s.end(ctx, genErr) }()

	start := time.Now()
	cards, genErr := s.flashcards(ctx, subject, topic)
	if genErr != nil {
		log.WarnContext(ctx, "flashcard generation failed, using fallback flashcards",
			"error", redact.Error(genErr),
			"duration_ms", time.Since(start).Milliseconds())
		cards = FallbackFlashcards(subject, topic)
	} else {
		log.InfoContext(ctx, "flashcards generated",
			"flashcard_count", len(cards),
			"duration_ms", time.Since(start).Milliseconds())
	}

	createdAt := s.now()
	guide, err := domain.NewStudyGuide(subject, topic, cards, BuildSchedule(createdAt, topic, s.loc), createdAt)
	if err != nil {
		genErr = fmt.Errorf("%w: failed to assemble study guide: %v", ErrUnexpected, err)
		log.ErrorContext(ctx, "failed to assemble study guide", "error", err)
		return nil, genErr
	}

	return guide, nil
}

// flashcards runs prompt, call and parse. A panic anywhere in the chain is
// reported as ErrUnexpected.
func (s *Service) flashcards(ctx context.Context, subject, topic string) (cards []domain.Flashcard, err error) {
	defer func() {
		if r := recover(); r != nil {
			cards = nil
			err = fmt.Errorf("%w: panic during generation: %v", ErrUnexpected, r)
		}
	}()

	prompt, err := s.prompts.Build(subject, topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	text, err := s.text.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseFlashcards(text)
}

func (s *Service) begin(ctx context.Context) {
	s.update(ctx, func(st *Status) {
		st.InFlight++
		st.Loading = true
		st.LastError = ""
	})
}

func (s *Service) end(ctx context.Context, err error) {
	s.update(ctx, func(st *Status) {
		if st.InFlight > 0 {
			st.InFlight--
		}
		st.Loading = st.InFlight > 0
		if err != nil {
			st.LastError = UserMessage(err)
		}
	})
}

// update applies fn to the status and announces the result. With an
// executor configured both happen on the UI thread.
func (s *Service) update(ctx context.Context, fn func(*Status)) {
	apply := func(ctx context.Context) error {
		s.mu.Lock()
		fn(&s.status)
		snapshot := s.status
		s.mu.Unlock()

		return events.Publish(ctx, s.emitter, events.TypeGenerationStatus, snapshot)
	}

	var err error
	if s.executor != nil {
		err = s.executor.Do(context.WithoutCancel(ctx), apply)
	} else {
		err = apply(ctx)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish generation status", "error", redact.Error(err))
	}
}

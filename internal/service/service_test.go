package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/events"
	"github.com/phrazzld/flipiq/internal/platform/memory"
	"github.com/phrazzld/flipiq/internal/task"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockStudyGuideGenerator is a hand-written fake of task.StudyGuideGenerator.
type MockStudyGuideGenerator struct {
	GenerateStudyGuideFn func(ctx context.Context, subject, topic string) (*domain.StudyGuide, error)
}

func (m *MockStudyGuideGenerator) GenerateStudyGuide(ctx context.Context, subject, topic string) (*domain.StudyGuide, error) {
	return m.GenerateStudyGuideFn(ctx, subject, topic)
}

func newGuide(subject, topic string) (*domain.StudyGuide, error) {
	card, err := domain.NewFlashcard("Q about "+topic, "A")
	if err != nil {
		return nil, err
	}
	return domain.NewStudyGuide(subject, topic, []domain.Flashcard{card}, nil, time.Now())
}

// fixture wires the real dispatcher, runner and in-memory store.
type fixture struct {
	dispatcher *task.Dispatcher
	runner     *task.Runner
	store      *memory.Store
	emitter    *events.InMemoryEventEmitter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	d := task.NewDispatcher(task.DefaultDispatcherConfig(), testLogger())
	d.Start()
	t.Cleanup(d.Stop)

	emitter := events.NewInMemoryEventEmitter(testLogger())
	return &fixture{
		dispatcher: d,
		runner:     task.NewRunner(d, testLogger()),
		store:      memory.NewSeededStore(emitter, testLogger(), time.Now()),
		emitter:    emitter,
	}
}

func (f *fixture) studyGuideService(t *testing.T, gen task.StudyGuideGenerator) *StudyGuideService {
	t.Helper()
	svc, err := NewStudyGuideService(gen, f.store, f.runner, testLogger())
	require.NoError(t, err)
	return svc
}

func (f *fixture) communityService(t *testing.T) *CommunityService {
	t.Helper()
	svc, err := NewCommunityService(f.store, f.dispatcher, "You", testLogger())
	require.NoError(t, err)
	return svc
}

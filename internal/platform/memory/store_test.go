package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/events"
	"github.com/phrazzld/flipiq/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGuide(t *testing.T, topic string, start time.Time) *domain.StudyGuide {
	t.Helper()
	card, err := domain.NewFlashcard("Q about "+topic, "A about "+topic)
	require.NoError(t, err)

	schedule := []domain.StudySession{
		domain.NewStudySession(start, "Introduction and Overview: "+topic),
		domain.NewStudySession(start.AddDate(0, 0, 1), "Core Concepts: "+topic),
	}
	guide, err := domain.NewStudyGuide("Mathematics", topic, []domain.Flashcard{card}, schedule, start)
	require.NoError(t, err)
	return guide
}

func TestNewSeededStore_SampleThread(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := NewSeededStore(nil, testLogger(), now)

	msgs := s.ChatMessages(context.Background())
	require.Len(t, msgs, 3)

	assert.Equal(t, "Sarah", msgs[0].Username)
	assert.Equal(t, "Anyone studying for the calculus exam?", msgs[0].Message)
	assert.Equal(t, now.Add(-time.Hour), msgs[0].Timestamp)
	assert.False(t, msgs[0].IsCurrentUser)

	assert.Equal(t, "Mike", msgs[1].Username)
	assert.Equal(t, "Yes! I'm struggling with derivatives", msgs[1].Message)
	assert.Equal(t, now.Add(-30*time.Minute), msgs[1].Timestamp)

	assert.Equal(t, "You", msgs[2].Username)
	assert.Equal(t, "I found some great flashcards on limits", msgs[2].Message)
	assert.Equal(t, now.Add(-15*time.Minute), msgs[2].Timestamp)
	assert.True(t, msgs[2].IsCurrentUser)

	assert.Empty(t, s.StudyGuides(context.Background()))
}

func TestStore_AddStudyGuide(t *testing.T) {
	ctx := context.Background()
	emitter := events.NewInMemoryEventEmitter(testLogger())
	s := NewStore(emitter, testLogger())

	var received []*events.Event
	emitter.Subscribe(events.HandlerFunc(func(ctx context.Context, e *events.Event) error {
		received = append(received, e)
		return nil
	}), events.TypeGuideAdded)

	now := time.Now()
	first := testGuide(t, "Limits", now)
	second := testGuide(t, "Derivatives", now)

	require.NoError(t, s.AddStudyGuide(ctx, first))
	require.NoError(t, s.AddStudyGuide(ctx, second))
	// Appending the same guide twice is allowed.
	require.NoError(t, s.AddStudyGuide(ctx, first))

	guides := s.StudyGuides(ctx)
	require.Len(t, guides, 3)
	assert.Equal(t, first.ID, guides[0].ID)
	assert.Equal(t, second.ID, guides[1].ID)
	assert.Equal(t, first.ID, guides[2].ID)

	require.Len(t, received, 3)
	var payload domain.StudyGuide
	require.NoError(t, received[1].UnmarshalPayload(&payload))
	assert.Equal(t, second.ID, payload.ID)
	assert.Equal(t, "Derivatives", payload.Topic)
}

func TestStore_AddStudyGuide_Nil(t *testing.T) {
	s := NewStore(nil, testLogger())
	err := s.AddStudyGuide(context.Background(), nil)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	assert.Empty(t, s.StudyGuides(context.Background()))
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil, testLogger())
	guide := testGuide(t, "Limits", time.Now())
	require.NoError(t, s.AddStudyGuide(ctx, guide))

	// Mutating the caller's value after the append does not leak in.
	guide.Flashcards[0].Question = "changed"

	got, err := s.StudyGuide(ctx, guide.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q about Limits", got.Flashcards[0].Question)

	// Nor does mutating a returned copy.
	got.Flashcards[0].Question = "changed again"
	got.Schedule = nil
	again := s.StudyGuides(ctx)[0]
	assert.Equal(t, "Q about Limits", again.Flashcards[0].Question)
	assert.Len(t, again.Schedule, 2)
}

func TestStore_StudyGuide_NotFound(t *testing.T) {
	s := NewStore(nil, testLogger())
	_, err := s.StudyGuide(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, store.ErrStudyGuideNotFound))
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestStore_SessionsOn(t *testing.T) {
	ctx := context.Background()
	loc := time.UTC
	s := NewStore(nil, testLogger())

	day := time.Date(2026, 10, 19, 9, 30, 0, 0, loc)
	require.NoError(t, s.AddStudyGuide(ctx, testGuide(t, "Limits", day)))
	require.NoError(t, s.AddStudyGuide(ctx, testGuide(t, "Integrals", day.AddDate(0, 0, 1))))

	tests := []struct {
		name   string
		day    time.Time
		topics []string
	}{
		{
			name:   "first day only has the first guide",
			day:    time.Date(2026, 10, 19, 23, 59, 0, 0, loc),
			topics: []string{"Introduction and Overview: Limits"},
		},
		{
			name:   "overlapping day includes both guides",
			day:    time.Date(2026, 10, 20, 0, 0, 0, 0, loc),
			topics: []string{"Core Concepts: Limits", "Introduction and Overview: Integrals"},
		},
		{
			name:   "day without sessions",
			day:    time.Date(2026, 10, 25, 12, 0, 0, 0, loc),
			topics: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := s.SessionsOn(ctx, tt.day, loc)
			var topics []string
			for _, session := range sessions {
				topics = append(topics, session.Topic)
			}
			assert.Equal(t, tt.topics, topics)
		})
	}
}

func TestStore_AddChatMessage(t *testing.T) {
	ctx := context.Background()
	emitter := events.NewInMemoryEventEmitter(testLogger())
	now := time.Now()
	s := NewSeededStore(emitter, testLogger(), now)

	var count int
	emitter.Subscribe(events.HandlerFunc(func(ctx context.Context, e *events.Event) error {
		count++
		return nil
	}), events.TypeMessageAdded)

	msg, err := domain.NewChatMessage("You", "Hello", now, true)
	require.NoError(t, err)
	require.NoError(t, s.AddChatMessage(ctx, msg))

	msgs := s.ChatMessages(ctx)
	require.Len(t, msgs, 4)
	assert.Equal(t, "Hello", msgs[3].Message)
	assert.Equal(t, 1, count)

	err = s.AddChatMessage(ctx, nil)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	assert.Len(t, s.ChatMessages(ctx), 4)
}

func TestStore_FailingObserverKeepsAppend(t *testing.T) {
	ctx := context.Background()
	emitter := events.NewInMemoryEventEmitter(testLogger())
	s := NewStore(emitter, testLogger())
	emitter.Subscribe(events.HandlerFunc(func(ctx context.Context, e *events.Event) error {
		return errors.New("observer broke")
	}))

	require.NoError(t, s.AddStudyGuide(ctx, testGuide(t, "Limits", time.Now())))
	assert.Len(t, s.StudyGuides(ctx), 1)
}

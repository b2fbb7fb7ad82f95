package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/events"
	"github.com/phrazzld/flipiq/internal/store"
)

// Store is the single in-memory source of truth for study guides and chat
// messages. It is safe for concurrent use. Observers are notified after the
// lock is released, on the goroutine that performed the append.
type Store struct {
	mu       sync.RWMutex
	guides   []*domain.StudyGuide
	messages []domain.ChatMessage

	emitter events.EventEmitter
	logger  *slog.Logger
}

var (
	_ store.StudyGuideStore  = (*Store)(nil)
	_ store.ChatMessageStore = (*Store)(nil)
)

// NewStore creates an empty Store. emitter may be nil when nothing observes it.
func NewStore(emitter events.EventEmitter, logger *slog.Logger) *Store {
	return &Store{
		guides:   make([]*domain.StudyGuide, 0),
		messages: make([]domain.ChatMessage, 0),
		emitter:  emitter,
		logger:   logger.With("component", "memory_store"),
	}
}

// NewSeededStore creates a Store pre-populated with the sample community
// thread, timestamped relative to now.
func NewSeededStore(emitter events.EventEmitter, logger *slog.Logger, now time.Time) *Store {
	s := NewStore(emitter, logger)
	s.messages = append(s.messages, SampleChatMessages(now)...)
	s.logger.Debug("seeded sample chat messages", "message_count", len(s.messages))
	return s
}

// AddStudyGuide implements store.StudyGuideStore.
func (s *Store) AddStudyGuide(ctx context.Context, guide *domain.StudyGuide) error {
	if guide == nil {
		return fmt.Errorf("%w: study guide is nil", store.ErrInvalidEntity)
	}

	stored := guide.Clone()

	s.mu.Lock()
	s.guides = append(s.guides, stored)
	count := len(s.guides)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "study guide added",
		"guide_id", stored.ID,
		"subject", stored.Subject,
		"topic", stored.Topic,
		"flashcard_count", len(stored.Flashcards),
		"guide_count", count)

	s.publish(ctx, events.TypeGuideAdded, stored)
	return nil
}

// StudyGuides implements store.StudyGuideStore.
func (s *Store) StudyGuides(ctx context.Context) []*domain.StudyGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.StudyGuide, len(s.guides))
	for i, g := range s.guides {
		out[i] = g.Clone()
	}
	return out
}

// StudyGuide implements store.StudyGuideStore.
func (s *Store) StudyGuide(ctx context.Context, id uuid.UUID) (*domain.StudyGuide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.guides {
		if g.ID == id {
			return g.Clone(), nil
		}
	}
	return nil, store.ErrStudyGuideNotFound
}

// SessionsOn implements store.StudyGuideStore.
func (s *Store) SessionsOn(ctx context.Context, day time.Time, loc *time.Location) []domain.StudySession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.StudySession
	for _, g := range s.guides {
		for _, session := range g.Schedule {
			if session.OnDay(day, loc) {
				out = append(out, session)
			}
		}
	}
	return out
}

// AddChatMessage implements store.ChatMessageStore.
func (s *Store) AddChatMessage(ctx context.Context, message *domain.ChatMessage) error {
	if message == nil {
		return fmt.Errorf("%w: chat message is nil", store.ErrInvalidEntity)
	}

	stored := *message

	s.mu.Lock()
	s.messages = append(s.messages, stored)
	count := len(s.messages)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "chat message added",
		"message_id", stored.ID,
		"username", stored.Username,
		"message_count", count)

	s.publish(ctx, events.TypeMessageAdded, stored)
	return nil
}

// ChatMessages implements store.ChatMessageStore.
func (s *Store) ChatMessages(ctx context.Context) []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ChatMessage(nil), s.messages...)
}

// publish notifies observers. A failing observer does not undo the append.
func (s *Store) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := events.Publish(ctx, s.emitter, eventType, payload); err != nil {
		s.logger.WarnContext(ctx, "observer failed to handle store event",
			"event_type", eventType,
			"error", err)
	}
}

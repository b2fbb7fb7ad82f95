package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/store"
)

// Executor runs a function on the dispatcher. task.Dispatcher satisfies it.
type Executor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommunityService posts to and reads the local community thread.
type CommunityService struct {
	messages store.ChatMessageStore
	executor Executor
	username string
	now      func() time.Time
	logger   *slog.Logger
}

// NewCommunityService creates a CommunityService that posts as username.
func NewCommunityService(
	messages store.ChatMessageStore,
	executor Executor,
	username string,
	logger *slog.Logger,
) (*CommunityService, error) {
	if messages == nil {
		return nil, nilDependency("community", "messages")
	}
	if executor == nil {
		return nil, nilDependency("community", "executor")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CommunityService{
		messages: messages,
		executor: executor,
		username: username,
		now:      time.Now,
		logger:   logger.With("component", "community_service"),
	}, nil
}

// SetClock overrides the time source used to stamp messages.
func (s *CommunityService) SetClock(now func() time.Time) {
	s.now = now
}

// SendMessage appends text to the thread as the current user. Blank text
// leaves the thread untouched and returns an error matching
// domain.ErrEmptyContent. Once queued the append always happens, so the
// caller's cancellation does not cut the wait short.
func (s *CommunityService) SendMessage(ctx context.Context, text string) (*domain.ChatMessage, error) {
	msg, err := domain.NewChatMessage(s.username, text, s.now(), true)
	if err != nil {
		s.logger.DebugContext(ctx, "ignoring blank message")
		return nil, err
	}

	if err := s.executor.Do(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.messages.AddChatMessage(ctx, msg)
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to append message", "message_id", msg.ID, "error", err)
		return nil, newServiceError("community", "send_message", "failed to append message", err)
	}

	s.logger.InfoContext(ctx, "message sent", "message_id", msg.ID)
	return msg, nil
}

// Messages returns the thread in posting order.
func (s *CommunityService) Messages(ctx context.Context) []domain.ChatMessage {
	return s.messages.ChatMessages(ctx)
}

package store

import (
	"context"

	"github.com/phrazzld/flipiq/internal/domain"
)

// ChatMessageStore holds the community thread in order. Messages are
// append-only.
type ChatMessageStore interface {
	// AddChatMessage appends message to the thread and notifies observers.
	AddChatMessage(ctx context.Context, message *domain.ChatMessage) error

	// ChatMessages returns copies of all messages in insertion order.
	ChatMessages(ctx context.Context) []domain.ChatMessage
}

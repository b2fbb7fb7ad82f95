package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry in the local community thread.
type ChatMessage struct {
	ID            uuid.UUID `json:"id"              yaml:"id"`
	Username      string    `json:"username"        yaml:"username"`
	Message       string    `json:"message"         yaml:"message"`
	Timestamp     time.Time `json:"timestamp"       yaml:"timestamp"`
	IsCurrentUser bool      `json:"is_current_user" yaml:"is_current_user"`
}

// NewChatMessage creates a message with a fresh ID. The text is trimmed and
// must not be blank.
func NewChatMessage(username, message string, timestamp time.Time, isCurrentUser bool) (*ChatMessage, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return nil, NewValidationError("message", "cannot be blank", ErrEmptyContent)
	}

	return &ChatMessage{
		ID:            uuid.New(),
		Username:      username,
		Message:       text,
		Timestamp:     timestamp,
		IsCurrentUser: isCurrentUser,
	}, nil
}

package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewChatMessage(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)
	msg, err := NewChatMessage("You", "  Anyone up for a study session?  ", ts, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if msg.Message != "Anyone up for a study session?" {
		t.Errorf("Expected trimmed message, got %q", msg.Message)
	}
	if msg.Username != "You" || !msg.IsCurrentUser || !msg.Timestamp.Equal(ts) {
		t.Errorf("Unexpected message %+v", msg)
	}
}

func TestNewChatMessage_Blank(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t "} {
		msg, err := NewChatMessage("You", text, time.Now(), true)
		if !errors.Is(err, ErrEmptyContent) {
			t.Errorf("NewChatMessage(%q): expected %v, got %v", text, ErrEmptyContent, err)
		}
		if msg != nil {
			t.Errorf("NewChatMessage(%q): expected nil message", text)
		}
	}
}

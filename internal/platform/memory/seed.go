package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// SampleChatMessages returns the community thread every launch starts with.
func SampleChatMessages(now time.Time) []domain.ChatMessage {
	return []domain.ChatMessage{
		{
			ID:        uuid.New(),
			Username:  "Sarah",
			Message:   "Anyone studying for the calculus exam?",
			Timestamp: now.Add(-time.Hour),
		},
		{
			ID:        uuid.New(),
			Username:  "Mike",
			Message:   "Yes! I'm struggling with derivatives",
			Timestamp: now.Add(-30 * time.Minute),
		},
		{
			ID:            uuid.New(),
			Username:      "You",
			Message:       "I found some great flashcards on limits",
			Timestamp:     now.Add(-15 * time.Minute),
			IsCurrentUser: true,
		},
	}
}

package views

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// Bubble alignments.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Bubble is one rendered chat message. Username is empty for the current
// user's own messages.
type Bubble struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username,omitempty"`
	Message       string    `json:"message"`
	Time          string    `json:"time"`
	Align         string    `json:"align"`
	IsCurrentUser bool      `json:"is_current_user"`
}

// Thread renders messages in order.
func Thread(messages []domain.ChatMessage, loc *time.Location) []Bubble {
	out := make([]Bubble, 0, len(messages))
	for _, m := range messages {
		b := Bubble{
			ID:            m.ID,
			Message:       m.Message,
			Time:          FormatTime(m.Timestamp, loc),
			Align:         AlignLeft,
			IsCurrentUser: m.IsCurrentUser,
		}
		if m.IsCurrentUser {
			b.Align = AlignRight
		} else {
			b.Username = m.Username
		}
		out = append(out, b)
	}
	return out
}

package views

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// Subjects is the fixed list offered when creating a guide.
var Subjects = []string{
	"Mathematics",
	"Science",
	"History",
	"Literature",
	"Computer Science",
	"Psychology",
}

// GuideSummary is one row of the guide list.
type GuideSummary struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	CardCount string    `json:"card_count"`
	Created   string    `json:"created"`
}

// GuideList summarizes guides in the order given.
func GuideList(guides []*domain.StudyGuide, loc *time.Location) []GuideSummary {
	out := make([]GuideSummary, 0, len(guides))
	for _, g := range guides {
		out = append(out, GuideSummary{
			ID:        g.ID,
			Subject:   g.Subject,
			Topic:     g.Topic,
			CardCount: CardCountLabel(len(g.Flashcards)),
			Created:   CreatedLabel(g.CreatedAt, loc),
		})
	}
	return out
}

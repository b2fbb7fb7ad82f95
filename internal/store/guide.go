package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// StudyGuideStore holds study guides in creation order. Guides are
// append-only: there is no update or delete.
type StudyGuideStore interface {
	// AddStudyGuide appends guide to the end of the collection and notifies
	// observers. It does not deduplicate.
	AddStudyGuide(ctx context.Context, guide *domain.StudyGuide) error

	// StudyGuides returns copies of all guides in insertion order.
	StudyGuides(ctx context.Context) []*domain.StudyGuide

	// StudyGuide returns a copy of the guide with the given ID.
	// Returns ErrStudyGuideNotFound if there is none.
	StudyGuide(ctx context.Context, id uuid.UUID) (*domain.StudyGuide, error)

	// SessionsOn returns every scheduled session, across all guides, that falls
	// on the same calendar day as day in loc.
	SessionsOn(ctx context.Context, day time.Time, loc *time.Location) []domain.StudySession
}

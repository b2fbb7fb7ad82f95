package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StudyGuide validation errors
var (
	// ErrStudyGuideIDEmpty is returned when a study guide ID is nil.
	ErrStudyGuideIDEmpty = errors.New("study guide ID cannot be empty")

	// ErrStudyGuideNoFlashcards is returned when a study guide has no flashcards.
	ErrStudyGuideNoFlashcards = errors.New("study guide must contain at least one flashcard")
)

// StudyGuide is a generated bundle of flashcards plus a study schedule for one
// subject/topic pair. Once appended to the store it is never mutated.
type StudyGuide struct {
	ID         uuid.UUID      `json:"id"          yaml:"id"`
	Subject    string         `json:"subject"     yaml:"subject"`
	Topic      string         `json:"topic"       yaml:"topic"`
	Flashcards []Flashcard    `json:"flashcards"  yaml:"flashcards"`
	CreatedAt  time.Time      `json:"created_at"  yaml:"created_at"`
	Schedule   []StudySession `json:"schedule"    yaml:"schedule"`
}

// NewStudyGuide assembles a StudyGuide with a fresh ID.
// Subject and topic are required and at least one flashcard must be present.
func NewStudyGuide(
	subject, topic string,
	flashcards []Flashcard,
	schedule []StudySession,
	createdAt time.Time,
) (*StudyGuide, error) {
	guide := &StudyGuide{
		ID:         uuid.New(),
		Subject:    strings.TrimSpace(subject),
		Topic:      strings.TrimSpace(topic),
		Flashcards: flashcards,
		CreatedAt:  createdAt,
		Schedule:   schedule,
	}

	if err := guide.Validate(); err != nil {
		return nil, err
	}

	return guide, nil
}

// Validate checks if the StudyGuide has valid data.
func (g *StudyGuide) Validate() error {
	if g.ID == uuid.Nil {
		return ErrStudyGuideIDEmpty
	}
	if err := ValidateSubjectTopic(g.Subject, g.Topic); err != nil {
		return err
	}
	if len(g.Flashcards) == 0 {
		return ErrStudyGuideNoFlashcards
	}
	for _, card := range g.Flashcards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSubjectTopic checks the precondition shared by guide generation and
// guide construction: both strings must be non-empty after trimming.
func ValidateSubjectTopic(subject, topic string) error {
	if strings.TrimSpace(subject) == "" {
		return NewValidationError("subject", "is required", ErrValidation)
	}
	if strings.TrimSpace(topic) == "" {
		return NewValidationError("topic", "is required", ErrValidation)
	}
	return nil
}

// Clone returns a deep copy so callers cannot alias the stored slices.
func (g *StudyGuide) Clone() *StudyGuide {
	if g == nil {
		return nil
	}
	c := *g
	c.Flashcards = append([]Flashcard(nil), g.Flashcards...)
	c.Schedule = append([]StudySession(nil), g.Schedule...)
	return &c
}

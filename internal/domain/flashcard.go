package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is nil.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardQuestionEmpty is returned when a flashcard has no question.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardAnswerEmpty is returned when a flashcard has no answer.
	ErrFlashcardAnswerEmpty = errors.New("flashcard answer cannot be empty")
)

// Flashcard is a question/answer pair used for self-testing.
// Whether a card is currently flipped is view state and is not stored here.
type Flashcard struct {
	ID       uuid.UUID `json:"id"       yaml:"id"`
	Question string    `json:"question" yaml:"question"`
	Answer   string    `json:"answer"   yaml:"answer"`
}

// NewFlashcard creates a Flashcard with a fresh ID.
// Question and answer are trimmed and must be non-empty.
func NewFlashcard(question, answer string) (Flashcard, error) {
	card := Flashcard{
		ID:       uuid.New(),
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
func (f Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}
	if strings.TrimSpace(f.Question) == "" {
		return ErrFlashcardQuestionEmpty
	}
	if strings.TrimSpace(f.Answer) == "" {
		return ErrFlashcardAnswerEmpty
	}
	return nil
}

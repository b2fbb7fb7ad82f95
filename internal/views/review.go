package views

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// Labels shown above the card face.
const (
	LabelQuestion = "Question"
	LabelAnswer   = "Answer"
)

// Review is a flip-card session over one guide's flashcards. It starts on
// the first card with the question showing.
type Review struct {
	guideID       uuid.UUID
	cards         []domain.Flashcard
	index         int
	showingAnswer bool
}

// ReviewState is the rendered form of a Review.
type ReviewState struct {
	GuideID       uuid.UUID `json:"guide_id"`
	Index         int       `json:"index"`
	Total         int       `json:"total"`
	Progress      string    `json:"progress"`
	Label         string    `json:"label"`
	Text          string    `json:"text"`
	ShowingAnswer bool      `json:"showing_answer"`
	HasPrevious   bool      `json:"has_previous"`
	HasNext       bool      `json:"has_next"`
}

// NewReview starts a review of guide.
func NewReview(guide *domain.StudyGuide) *Review {
	return &Review{
		guideID: guide.ID,
		cards:   append([]domain.Flashcard(nil), guide.Flashcards...),
	}
}

// Flip toggles between question and answer.
func (r *Review) Flip() {
	r.showingAnswer = !r.showingAnswer
}

// Next moves to the following card and shows its question. On the last card
// it does nothing and returns false.
func (r *Review) Next() bool {
	if !r.HasNext() {
		return false
	}
	r.index++
	r.showingAnswer = false
	return true
}

// Previous moves to the preceding card and shows its question. On the first
// card it does nothing and returns false.
func (r *Review) Previous() bool {
	if !r.HasPrevious() {
		return false
	}
	r.index--
	r.showingAnswer = false
	return true
}

// Seek jumps to index, clamped into range, with the given face showing.
func (r *Review) Seek(index int, showAnswer bool) {
	switch {
	case index < 0:
		index = 0
	case index >= len(r.cards) && len(r.cards) > 0:
		index = len(r.cards) - 1
	}
	r.index = index
	r.showingAnswer = showAnswer
}

// HasNext reports whether a card follows the current one.
func (r *Review) HasNext() bool { return r.index < len(r.cards)-1 }

// HasPrevious reports whether a card precedes the current one.
func (r *Review) HasPrevious() bool { return r.index > 0 }

// Index returns the zero-based position of the current card.
func (r *Review) Index() int { return r.index }

// ShowingAnswer reports whether the answer face is up.
func (r *Review) ShowingAnswer() bool { return r.showingAnswer }

// Card returns the current flashcard.
func (r *Review) Card() domain.Flashcard {
	if len(r.cards) == 0 {
		return domain.Flashcard{}
	}
	return r.cards[r.index]
}

// Label returns "Question" or "Answer" for the face that is up.
func (r *Review) Label() string {
	if r.showingAnswer {
		return LabelAnswer
	}
	return LabelQuestion
}

// Text returns the text of the face that is up.
func (r *Review) Text() string {
	card := r.Card()
	if r.showingAnswer {
		return card.Answer
	}
	return card.Question
}

// Progress renders the position as "i of n", counting from 1.
func (r *Review) Progress() string {
	return fmt.Sprintf("%d of %d", r.index+1, len(r.cards))
}

// State renders the current position.
func (r *Review) State() ReviewState {
	return ReviewState{
		GuideID:       r.guideID,
		Index:         r.index,
		Total:         len(r.cards),
		Progress:      r.Progress(),
		Label:         r.Label(),
		Text:          r.Text(),
		ShowingAnswer: r.showingAnswer,
		HasPrevious:   r.HasPrevious(),
		HasNext:       r.HasNext(),
	}
}

package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/flipiq/internal/domain"
)

// StripCodeFences removes Markdown code-fence markers and the surrounding
// whitespace from model output.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseFlashcards decodes model output into flashcards. The text must be a
// JSON array of objects, optionally fenced. Elements without a non-empty
// string "question" and "answer" are skipped. ErrEmptyResult is returned when
// nothing usable remains.
func ParseFlashcards(text string) ([]domain.Flashcard, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &elements); err != nil {
		return nil, fmt.Errorf("%w: response text is not a JSON array: %v", ErrEmptyResult, err)
	}

	cards := make([]domain.Flashcard, 0, len(elements))
	for _, raw := range elements {
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}

		question, _ := fields["question"].(string)
		answer, _ := fields["answer"].(string)

		card, err := domain.NewFlashcard(question, answer)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %d elements, none usable", ErrEmptyResult, len(elements))
	}

	return cards, nil
}

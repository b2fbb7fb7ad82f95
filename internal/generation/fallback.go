package generation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/domain"
)

// fallbackTemplates hold question/answer formats. Each takes the topic and
// subject, in that order, through explicit argument indexes.
var fallbackTemplates = []struct {
	question string
	answer   string
}{
	{
		question: "What is the main concept of %[1]s in %[2]s?",
		answer:   "%[1]s is a fundamental concept in %[2]s that forms the basis for understanding more advanced material.",
	},
	{
		question: "How does %[1]s relate to other concepts in %[2]s?",
		answer:   "%[1]s connects to many areas of %[2]s and builds on earlier foundational ideas.",
	},
	{
		question: "What are the key applications of %[1]s?",
		answer:   "%[1]s is applied to solve practical problems in %[2]s and related fields.",
	},
	{
		question: "What are common misconceptions about %[1]s?",
		answer:   "A common mistake is memorizing %[1]s without understanding the principles of %[2]s behind it.",
	},
	{
		question: "How would you explain %[1]s to someone new to %[2]s?",
		answer:   "Start from the basic definitions of %[1]s, then work through simple examples before moving to harder %[2]s problems.",
	},
}

// FallbackFlashcards returns the templated flashcards used when generation
// fails. The text depends only on subject and topic.
func FallbackFlashcards(subject, topic string) []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, len(fallbackTemplates))
	for _, t := range fallbackTemplates {
		cards = append(cards, domain.Flashcard{
			ID:       uuid.New(),
			Question: fmt.Sprintf(t.question, topic, subject),
			Answer:   fmt.Sprintf(t.answer, topic, subject),
		})
	}
	return cards
}

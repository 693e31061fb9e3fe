package domain

import (
	"errors"
	"strings"
)

// DeckSize is the number of cards every successfully generated deck contains.
// The pipeline pads or truncates model output so this count always holds.
const DeckSize = 6

// Card-specific validation errors
var (
	// ErrCardQuestionEmpty is returned when a card's question is empty.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardAnswerEmpty is returned when a card's answer is empty.
	ErrCardAnswerEmpty = errors.New("card answer cannot be empty")
)

// Card represents a single question/answer flashcard produced by the
// synthesis pipeline. Both fields are trimmed, non-empty strings.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewCard creates a Card from the given question and answer, trimming
// surrounding whitespace. Returns an error if either field is empty
// after trimming.
func NewCard(question, answer string) (Card, error) {
	card := Card{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c Card) Validate() error {
	if c.Question == "" {
		return ErrCardQuestionEmpty
	}

	if c.Answer == "" {
		return ErrCardAnswerEmpty
	}

	return nil
}

// FillerCard returns the synthetic card appended when the model produced
// fewer valid cards than DeckSize. The wording is fixed so callers can rely
// on a stable shape for padded decks.
func FillerCard(topic string) Card {
	return Card{
		Question: "What is another aspect of " + topic + "?",
		Answer: "This is another important aspect of " + topic +
			" that helps in understanding the concept better.",
	}
}

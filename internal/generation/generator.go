package generation

import (
	"context"

	"github.com/cardsmith/cardsmith/internal/domain"
)

// Generator defines the interface for generating flashcard decks from a
// topic. This interface serves as a boundary between the application core
// and external AI/LLM services.
type Generator interface {
	// GenerateCards creates exactly domain.DeckSize flashcards about the
	// given topic, pitched at the given difficulty level.
	//
	// Returns the generated cards, or an error from this package's taxonomy:
	// ErrNotReady when no model is configured, ErrUpstreamFailure on
	// transport/provider errors, ErrEmptyResponse when no content could be
	// extracted, and ErrMalformedResponse when the content could not be
	// parsed into cards. It never returns a partial deck.
	GenerateCards(ctx context.Context, topic, level string) ([]domain.Card, error)

	// Configure resolves a usable model for the given API credential and
	// publishes it for subsequent GenerateCards calls. On failure the
	// generator reverts to the not-ready state and the reason is returned.
	Configure(ctx context.Context, apiKey string) error

	// Ready reports whether a usable model is currently configured.
	Ready() bool

	// Model returns the identifier of the currently configured model, or
	// the empty string when not ready.
	Model() string
}

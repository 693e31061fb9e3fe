package api

import (
	"errors"
	"net/http"

	"github.com/cardsmith/cardsmith/internal/generation"
	"github.com/cardsmith/cardsmith/internal/platform/envfile"
	"github.com/cardsmith/cardsmith/internal/platform/gemini"
	"github.com/cardsmith/cardsmith/internal/service/deck"
)

// MapErrorToStatusCode maps domain and pipeline errors to HTTP status codes.
// An unconfigured pipeline is a service-availability condition, not a client
// mistake, so it maps to 503 rather than 4xx.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, deck.ErrEmptyTopic),
		errors.Is(err, gemini.ErrEmptyTopic):
		return http.StatusBadRequest
	case errors.Is(err, envfile.ErrInvalidKey),
		errors.Is(err, gemini.ErrEmptyAPIKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the error. Upstream
// provider detail stays in the logs; the client sees only the category.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, generation.ErrNotReady):
		return "Gemini API not configured. Please add your API key in settings."
	case errors.Is(err, deck.ErrEmptyTopic), errors.Is(err, gemini.ErrEmptyTopic):
		return "Topic is required"
	case errors.Is(err, envfile.ErrInvalidKey), errors.Is(err, gemini.ErrEmptyAPIKey):
		return "API key is required"
	case errors.Is(err, generation.ErrNoModels):
		return "No compatible text generation model is available for this API key"
	case errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrMalformedResponse):
		return "The model returned an unusable response. Please try again."
	case errors.Is(err, generation.ErrUpstreamFailure):
		return "Failed to generate flashcards. Please try again."
	default:
		return "An unexpected error occurred"
	}
}

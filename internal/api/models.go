package api

import "github.com/cardsmith/cardsmith/internal/domain"

// GenerateRequest is the request body for deck generation.
type GenerateRequest struct {
	Topic string `json:"topic" validate:"required"`
	Level string `json:"level"`
}

// GenerateResponse is the response body for a successful deck generation.
type GenerateResponse struct {
	Success    bool          `json:"success"`
	Flashcards []domain.Card `json:"flashcards"`
	DeckID     string        `json:"deck_id"`
}

// UpdateKeyRequest is the request body for rotating the Gemini API key.
type UpdateKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

// UpdateKeyResponse is the response body for a key rotation.
type UpdateKeyResponse struct {
	Success bool   `json:"success"`
	Model   string `json:"model,omitempty"`
	Message string `json:"message"`
}

// StatusResponse reports pipeline readiness to the client.
type StatusResponse struct {
	Ready bool   `json:"ready"`
	Model string `json:"model,omitempty"`
}

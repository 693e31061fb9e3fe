package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyTopic is returned when a generation topic is empty.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptyAPIKey is returned when Configure is called without a credential.
	ErrEmptyAPIKey = errors.New("API key cannot be empty")
)

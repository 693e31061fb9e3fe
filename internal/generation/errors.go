package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrNotReady is returned when no usable model has been configured yet,
	// for example before a valid API key has been supplied.
	ErrNotReady = errors.New("generation service is not configured")

	// ErrUpstreamFailure is returned when the call to the language model
	// provider fails at the transport or provider level.
	ErrUpstreamFailure = errors.New("language model request failed")

	// ErrNoModels is returned when the provider reports no usable
	// generative models for the supplied credential.
	ErrNoModels = errors.New("no generative models available")

	// ErrEmptyResponse is returned when no textual content can be
	// extracted from the provider response.
	ErrEmptyResponse = errors.New("empty or malformed response from language model")

	// ErrMalformedResponse is returned when the response content cannot be
	// parsed into the expected card structure.
	ErrMalformedResponse = errors.New("failed to parse language model response")
)

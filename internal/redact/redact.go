// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or returned in error responses. Provider
// errors can echo request URLs or credentials back verbatim; this package
// prevents an API key from leaking into logs that way.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// Google API keys have a fixed, recognizable shape.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// Key material passed as a URL query parameter.
	urlKeyParamRegex = regexp.MustCompile(`(?i)([?&](?:key|api[_-]?key|token)=)[^&\s]+`)

	// Generic credential assignments in error text.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|credential)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)
)

// String redacts sensitive information from the given string.
func String(s string) string {
	s = googleKeyRegex.ReplaceAllString(s, RedactedKeyPlaceholder)
	s = urlKeyParamRegex.ReplaceAllString(s, "${1}"+RedactedKeyPlaceholder)
	s = apiKeyRegex.ReplaceAllString(s, "${1}${2}"+RedactedCredentialPlaceholder)
	return s
}

// Error redacts sensitive information from an error's message.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

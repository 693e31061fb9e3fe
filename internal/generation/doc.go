// Package generation provides interfaces and error definitions for
// interacting with external AI/LLM services for content generation. It
// abstracts the details of LLM API integration (Gemini), allowing the
// application to generate flashcard decks from a topic without coupling
// to a specific external service.
package generation

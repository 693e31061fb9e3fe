// Package api implements the HTTP handlers for the flashcard service: deck
// generation, API key rotation, pipeline status, and the web UI. Handlers
// translate domain and pipeline errors into consistent JSON responses via the
// shared response helpers.
package api

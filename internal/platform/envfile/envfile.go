// Package envfile provides a runtime-updatable credential store backed by a
// dotenv file. The API key supplied through the web UI is persisted here and
// re-read on every update, surviving process restarts.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// KeyName is the dotenv variable holding the Gemini API key.
const KeyName = "GOOGLE_API_KEY"

// Credential validation errors.
var (
	// ErrKeyMissing is returned when the store file has no API key entry.
	ErrKeyMissing = errors.New("API key not found in credential file")

	// ErrInvalidKey is returned when a key contains line breaks or is empty
	// after sanitization.
	ErrInvalidKey = errors.New("invalid API key format")
)

// Store reads and writes the API key in a dotenv file. Writes go through a
// temp file and rename so a concurrent reader never sees a partial file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store for the dotenv file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the underlying dotenv file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the API key from the dotenv file, stripping surrounding quotes
// and whitespace. Returns ErrKeyMissing when the file does not exist or has
// no key entry.
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, err := godotenv.Read(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyMissing
		}
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	key := Sanitize(env[KeyName])
	if key == "" {
		return "", ErrKeyMissing
	}

	return key, nil
}

// Save sanitizes and persists the API key, preserving any other variables
// already present in the file. The key is stored quoted.
func (s *Store) Save(key string) error {
	sanitized := Sanitize(key)
	if sanitized == "" {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	env, err := godotenv.Read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read credential file: %w", err)
		}
		env = map[string]string{}
	}
	env[KeyName] = sanitized

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode credential file: %w", err)
	}

	// Write atomically: temp file in the same directory, then rename.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".env-*")
	if err != nil {
		return fmt.Errorf("failed to create temp credential file: %w", err)
	}

	if _, err := tmp.WriteString(content + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp credential file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace credential file: %w", err)
	}

	return nil
}

// Sanitize strips surrounding quotes and whitespace from a key value, the
// same normalization applied to keys loaded from the environment.
func Sanitize(key string) string {
	trimmed := strings.TrimSpace(key)
	if len(trimmed) >= 2 {
		if (strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`)) ||
			(strings.HasPrefix(trimmed, `'`) && strings.HasSuffix(trimmed, `'`)) {
			trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
	}
	return trimmed
}

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain key", input: "abc123", expected: "abc123"},
		{name: "surrounding whitespace", input: "  abc123  ", expected: "abc123"},
		{name: "double quotes", input: `"abc123"`, expected: "abc123"},
		{name: "single quotes", input: "'abc123'", expected: "abc123"},
		{name: "quotes and whitespace", input: `  "abc123"  `, expected: "abc123"},
		{name: "empty", input: "", expected: ""},
		{name: "lone quote preserved", input: `"`, expected: `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, store.Save(`"my-secret-key"`))

	key, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-secret-key", key, "quotes are stripped on save")

	// Overwriting replaces the previous key.
	require.NoError(t, store.Save("rotated-key"))
	key, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "rotated-key", key)
}

func TestStorePreservesOtherVariables(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER_VAR=keep-me\n"), 0o600))

	store := NewStore(path)
	require.NoError(t, store.Save("new-key"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "OTHER_VAR")
	assert.Contains(t, string(content), "keep-me")
}

func TestStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), ".env"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestStoreSaveRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), ".env"))

	assert.ErrorIs(t, store.Save(""), ErrInvalidKey)
	assert.ErrorIs(t, store.Save("   "), ErrInvalidKey)
	assert.ErrorIs(t, store.Save("multi\nline"), ErrInvalidKey)
	assert.ErrorIs(t, store.Save("carriage\rreturn"), ErrInvalidKey)
}

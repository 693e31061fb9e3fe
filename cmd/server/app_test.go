package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsmith/cardsmith/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:     8080,
			LogLevel: "info",
		},
		LLM: config.LLMConfig{
			CredentialFile:        filepath.Join(t.TempDir(), ".env"),
			RequestTimeoutSeconds: 60,
		},
	}
}

func testApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(context.Background(), testConfig(t), logger)
	require.NoError(t, err)
	return app
}

func TestNewApplicationStartsLockedWithoutKey(t *testing.T) {
	t.Parallel()

	app := testApplication(t)

	assert.False(t, app.generator.Ready(),
		"pipeline must stay locked when no key is available")
	assert.Empty(t, app.generator.Model())
}

func TestRouterWiring(t *testing.T) {
	t.Parallel()

	router := testApplication(t).setupRouter()

	t.Run("health check", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("home page serves the UI", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	})

	t.Run("status reports locked pipeline", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Ready bool `json:"ready"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Ready)
	})

	t.Run("generate on locked pipeline returns 503", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/generate",
			strings.NewReader(`{"topic":"Photosynthesis"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "API key")
	})

	t.Run("unknown route returns 404", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/decks", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

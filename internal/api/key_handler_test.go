package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateKeyHandler(t *testing.T) {
	t.Parallel()

	t.Run("successful rotation reports the selected model", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{model: "models/gemini-pro"}
		h := NewKeyHandler(testService(gen), testLogger())

		w := postJSON(t, h.UpdateKey, "/api/key", `{"key":"fresh-key"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp UpdateKeyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "models/gemini-pro", resp.Model)
		assert.Equal(t, "fresh-key", gen.lastKey)
	})

	t.Run("missing key returns 400", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		h := NewKeyHandler(testService(gen), testLogger())

		w := postJSON(t, h.UpdateKey, "/api/key", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, gen.configureCalls)
	})

	t.Run("whitespace-only key returns 400", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		h := NewKeyHandler(testService(gen), testLogger())

		w := postJSON(t, h.UpdateKey, "/api/key", `{"key":"  \"\"  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, gen.configureCalls)
	})

	t.Run("configuration failure returns 500", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{configureErr: errors.New("provider down")}
		h := NewKeyHandler(testService(gen), testLogger())

		w := postJSON(t, h.UpdateKey, "/api/key", `{"key":"rotated"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "provider down")
	})
}

func TestStatusHandler(t *testing.T) {
	t.Parallel()

	t.Run("ready pipeline", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{ready: true, model: "models/gemini-pro"}
		h := NewKeyHandler(testService(gen), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		w := httptest.NewRecorder()
		h.Status(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Ready)
		assert.Equal(t, "models/gemini-pro", resp.Model)
	})

	t.Run("locked pipeline", func(t *testing.T) {
		t.Parallel()
		h := NewKeyHandler(testService(&fakeGenerator{}), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		w := httptest.NewRecorder()
		h.Status(w, req)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Ready)
		assert.Empty(t, resp.Model)
	})
}

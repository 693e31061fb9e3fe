package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler(t *testing.T) {
	t.Parallel()

	t.Run("locked pipeline opens settings", func(t *testing.T) {
		t.Parallel()
		h := NewHomeHandler(testService(&fakeGenerator{}), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		h.Home(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "const openSettingsOnLoad = true;")
	})

	t.Run("ready pipeline shows the model", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{ready: true, model: "models/gemini-pro"}
		h := NewHomeHandler(testService(gen), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		h.Home(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "models/gemini-pro")
		assert.Contains(t, w.Body.String(), "const openSettingsOnLoad = false;")
	})
}

package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID when present", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusBadRequest, "bad input")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "bad input", resp.Error)
		assert.NotNil(t, resp.Flashcards)
		assert.Empty(t, resp.Flashcards)
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusInternalServerError, "boom")

		assert.NotContains(t, w.Body.String(), "trace_id")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError,
		"Something went wrong", errors.New("secret internal detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.NotContains(t, w.Body.String(), "secret internal detail",
		"internal error must not reach the client")
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"x"}`))
		require.NoError(t, DecodeJSON(req, &p))
		assert.NoError(t, ValidateRequest(p))
	})

	t.Run("missing required field fails validation", func(t *testing.T) {
		t.Parallel()
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
		require.NoError(t, DecodeJSON(req, &p))
		assert.Error(t, ValidateRequest(p))
	})
}

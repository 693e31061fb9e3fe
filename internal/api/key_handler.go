package api

import (
	"log/slog"
	"net/http"

	"github.com/cardsmith/cardsmith/internal/api/shared"
	"github.com/cardsmith/cardsmith/internal/service/deck"
)

// KeyHandler handles API key rotation and pipeline status requests.
type KeyHandler struct {
	service *deck.Service
	logger  *slog.Logger
}

// NewKeyHandler creates a new KeyHandler.
func NewKeyHandler(service *deck.Service, logger *slog.Logger) *KeyHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for KeyHandler")
	}
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for KeyHandler")
	}

	return &KeyHandler{
		service: service,
		logger:  logger.With(slog.String("component", "key_handler")),
	}
}

// UpdateKey handles POST /api/key.
// It persists the new key and reconfigures the generation pipeline. The key
// itself is never logged.
func (h *KeyHandler) UpdateKey(w http.ResponseWriter, r *http.Request) {
	var req UpdateKeyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"API key is required", err)
		return
	}

	if err := h.service.UpdateCredential(r.Context(), req.Key); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	status := h.service.Status()
	shared.RespondWithJSON(w, r, http.StatusOK, UpdateKeyResponse{
		Success: true,
		Model:   status.Model,
		Message: "API key updated",
	})
}

// Status handles GET /api/status.
// It reports whether the generation pipeline is ready and which model it uses.
func (h *KeyHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Ready: status.Ready,
		Model: status.Model,
	})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cardsmith/cardsmith/internal/api/shared"
	"github.com/cardsmith/cardsmith/internal/service/deck"
)

// DeckHandler handles flashcard deck generation requests.
type DeckHandler struct {
	service *deck.Service
	logger  *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(service *deck.Service, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		service: service,
		logger:  logger.With(slog.String("component", "deck_handler")),
	}
}

// GenerateDeck handles POST /api/generate.
// It generates a fixed-size flashcard deck for the requested topic and level.
func (h *DeckHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(deck.ErrEmptyTopic), err)
		return
	}

	cards, err := h.service.GenerateDeck(r.Context(), req.Topic, req.Level)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	resp := GenerateResponse{
		Success:    true,
		Flashcards: cards,
		DeckID:     uuid.NewString(),
	}

	h.logger.Info("deck generated",
		slog.String("deck_id", resp.DeckID),
		slog.Int("card_count", len(cards)))

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

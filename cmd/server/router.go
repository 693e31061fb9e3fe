package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardsmith/cardsmith/internal/api"
	apiMiddleware "github.com/cardsmith/cardsmith/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	homeHandler := api.NewHomeHandler(app.deckService, app.logger)
	deckHandler := api.NewDeckHandler(app.deckService, app.logger)
	keyHandler := api.NewKeyHandler(app.deckService, app.logger)

	// Web UI
	r.Get("/", homeHandler.Home)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", deckHandler.GenerateDeck)
		r.Post("/key", keyHandler.UpdateKey)
		r.Get("/status", keyHandler.Status)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

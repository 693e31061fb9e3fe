package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardsmith/cardsmith/internal/config"
	"github.com/cardsmith/cardsmith/internal/generation"
	"github.com/cardsmith/cardsmith/internal/platform/envfile"
	"github.com/cardsmith/cardsmith/internal/platform/gemini"
	"github.com/cardsmith/cardsmith/internal/redact"
	"github.com/cardsmith/cardsmith/internal/service/deck"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	credentials *envfile.Store
	generator   generation.Generator
	deckService *deck.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. A missing or rejected API key is not fatal: the server starts
// in locked mode and waits for a key through the settings endpoint.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.credentials = envfile.NewStore(cfg.LLM.CredentialFile)

	pipeline, err := gemini.NewPipeline(
		logger.With(slog.String("component", "generation_pipeline")),
		gemini.NewGenaiProvider,
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation pipeline: %w", err)
	}
	app.generator = pipeline

	app.deckService = deck.NewService(app.generator, app.credentials, logger)

	app.configureInitialCredential(ctx)

	logger.Info("Application initialized successfully")
	return app, nil
}

// configureInitialCredential resolves the startup API key and performs a
// best-effort pipeline configuration. The environment key takes precedence
// over the credential file. Any failure leaves the pipeline locked rather
// than aborting startup.
func (app *application) configureInitialCredential(ctx context.Context) {
	key := app.config.LLM.GeminiAPIKey
	if key == "" {
		stored, err := app.credentials.Load()
		if err != nil {
			if errors.Is(err, envfile.ErrKeyMissing) {
				app.logger.Info("no API key configured, starting in locked mode",
					slog.String("credential_file", app.config.LLM.CredentialFile))
			} else {
				app.logger.Warn("failed to read credential file, starting in locked mode",
					slog.String("error", redact.Error(err)))
			}
			return
		}
		key = stored
	}

	if err := app.generator.Configure(ctx, key); err != nil {
		app.logger.Warn("initial pipeline configuration failed, starting in locked mode",
			slog.String("error", redact.Error(err)))
		return
	}

	app.logger.Info("generation pipeline ready",
		slog.String("model", app.generator.Model()))
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}

// Package main implements the entry point for the Cardsmith server, a web
// service that turns a study topic into a fixed-size flashcard deck using
// Google's generative language API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/cardsmith/cardsmith/internal/config"
	"github.com/cardsmith/cardsmith/internal/platform/logger"
)

// main wires configuration, logging, the generation pipeline, and the HTTP
// server together, then runs until interrupted.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the configured logger, and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if cfg.LLM.GeminiAPIKey != "" {
		appLogger.Debug("LLM configuration", slog.Bool("api_key_present", true))
	}

	return cfg, appLogger, nil
}

// Package deck orchestrates flashcard deck generation: request
// normalization, credential updates, and pipeline status reporting. It sits
// between the HTTP layer and the generation pipeline.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cardsmith/cardsmith/internal/domain"
	"github.com/cardsmith/cardsmith/internal/generation"
	"github.com/cardsmith/cardsmith/internal/platform/envfile"
	"github.com/cardsmith/cardsmith/internal/redact"
)

// DefaultLevel is used when a request does not specify a difficulty level.
const DefaultLevel = "beginner"

// Service-level errors.
var (
	// ErrEmptyTopic is returned when a generation request has no topic.
	ErrEmptyTopic = errors.New("topic cannot be empty")
)

// Status describes the current readiness of the generation pipeline.
type Status struct {
	Ready bool
	Model string
}

// Service coordinates deck generation and credential management.
type Service struct {
	generator   generation.Generator
	credentials *envfile.Store
	logger      *slog.Logger
}

// NewService creates a deck Service.
func NewService(generator generation.Generator, credentials *envfile.Store, logger *slog.Logger) *Service {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for deck.Service")
	}
	if generator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("generator cannot be nil for deck.Service")
	}

	return &Service{
		generator:   generator,
		credentials: credentials,
		logger:      logger.With(slog.String("component", "deck_service")),
	}
}

// GenerateDeck produces exactly domain.DeckSize cards about topic. The level
// defaults to DefaultLevel when blank. An empty topic is rejected before any
// pipeline work.
func (s *Service) GenerateDeck(ctx context.Context, topic, level string) ([]domain.Card, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}

	s.logger.Debug("generating deck",
		slog.String("topic", topic),
		slog.String("level", level))

	cards, err := s.generator.GenerateCards(ctx, topic, level)
	if err != nil {
		s.logger.Warn("deck generation failed",
			slog.String("topic", topic),
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	return cards, nil
}

// UpdateCredential sanitizes and persists a new API key, then reconfigures
// the pipeline with it. The key is persisted before reconfiguration so a
// transient provider outage does not lose the rotation; the pipeline stays
// not-ready until a later successful Configure.
func (s *Service) UpdateCredential(ctx context.Context, key string) error {
	if s.credentials != nil {
		if err := s.credentials.Save(key); err != nil {
			return err
		}

		// Re-read after update so the pipeline sees exactly what was stored.
		stored, err := s.credentials.Load()
		if err != nil {
			return err
		}
		key = stored
	} else {
		key = envfile.Sanitize(key)
		if key == "" {
			return envfile.ErrInvalidKey
		}
	}

	if err := s.generator.Configure(ctx, key); err != nil {
		return fmt.Errorf("failed to configure generation pipeline: %w", err)
	}

	s.logger.Info("credential updated and pipeline reconfigured",
		slog.String("model", s.generator.Model()))

	return nil
}

// Status reports pipeline readiness and the selected model.
func (s *Service) Status() Status {
	return Status{
		Ready: s.generator.Ready(),
		Model: s.generator.Model(),
	}
}

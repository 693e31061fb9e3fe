package gemini

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"text/template"
	"time"

	"github.com/cardsmith/cardsmith/internal/domain"
	"github.com/cardsmith/cardsmith/internal/generation"
)

//go:embed prompt.tmpl
var promptTemplateText string

// defaultRequestTimeout bounds a single generation round trip when the
// caller does not configure one.
const defaultRequestTimeout = 60 * time.Second

// handle is the immutable configuration snapshot published by Configure.
// Readers hold a reference to the whole snapshot, never a partial update.
type handle struct {
	provider Provider
	model    string
}

// Pipeline implements generation.Generator using a Gemini-backed Provider.
// The only shared mutable state is the current handle, swapped atomically
// on (re)configuration; generation requests are otherwise stateless.
type Pipeline struct {
	logger  *slog.Logger
	factory ProviderFactory
	timeout time.Duration
	tmpl    *template.Template
	current atomic.Pointer[handle]
}

var _ generation.Generator = (*Pipeline)(nil)

// NewPipeline creates a Pipeline that builds providers with factory. The
// pipeline starts in the not-ready state; call Configure to resolve a model.
// timeout bounds each provider round trip, defaulting when non-positive.
func NewPipeline(logger *slog.Logger, factory ProviderFactory, timeout time.Duration) (*Pipeline, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if factory == nil {
		return nil, errors.New("provider factory cannot be nil")
	}

	tmpl, err := template.New("flashcards").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Pipeline{
		logger:  logger.With(slog.String("component", "gemini_pipeline")),
		factory: factory,
		timeout: timeout,
		tmpl:    tmpl,
	}, nil
}

// Configure contacts the provider with the given credential, selects a
// model, and publishes a new handle. On any failure the pipeline is left
// not-ready and the reason is returned; it never panics. Safe to call
// concurrently with GenerateCards and safe to re-invoke on credential
// rotation.
func (p *Pipeline) Configure(ctx context.Context, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		p.current.Store(nil)
		return ErrEmptyAPIKey
	}

	provider, err := p.factory(ctx, apiKey)
	if err != nil {
		p.current.Store(nil)
		return fmt.Errorf("%w: %v", generation.ErrUpstreamFailure, err)
	}

	listCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	names, err := provider.ListModels(listCtx)
	if err != nil {
		p.current.Store(nil)
		return fmt.Errorf("%w: %v", generation.ErrUpstreamFailure, err)
	}

	model := PickModel(names)
	if model == "" {
		p.current.Store(nil)
		return fmt.Errorf("%w: provider reported %d models", generation.ErrNoModels, len(names))
	}

	// Publish the fully built snapshot; concurrent readers see either the
	// previous handle or this one, never a torn state.
	p.current.Store(&handle{provider: provider, model: model})

	p.logger.Info("pipeline configured",
		slog.String("model", model),
		slog.Int("candidate_count", len(names)))

	return nil
}

// Ready reports whether a usable model handle is currently published.
func (p *Pipeline) Ready() bool {
	return p.current.Load() != nil
}

// Model returns the identifier of the configured model, or "" when not ready.
func (p *Pipeline) Model() string {
	h := p.current.Load()
	if h == nil {
		return ""
	}
	return h.model
}

// GenerateCards produces exactly domain.DeckSize cards about topic at the
// given difficulty level. See generation.Generator for the error contract.
func (p *Pipeline) GenerateCards(ctx context.Context, topic, level string) ([]domain.Card, error) {
	h := p.current.Load()
	if h == nil {
		return nil, fmt.Errorf("%w: no model selected", generation.ErrNotReady)
	}

	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}

	prompt, err := p.buildPrompt(topic, level)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("requesting card generation",
		slog.String("model", h.model),
		slog.Int("prompt_length", len(prompt)))

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := h.provider.Generate(callCtx, h.model, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrUpstreamFailure, err)
	}

	content := extractContent(resp)
	if content == "" {
		return nil, fmt.Errorf("%w: no extractable content", generation.ErrEmptyResponse)
	}

	cards, err := parseCards(stripFences(content), topic)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("card generation complete",
		slog.String("model", h.model),
		slog.Int("card_count", len(cards)))

	return cards, nil
}

// buildPrompt renders the instruction prompt with topic and level embedded
// verbatim.
func (p *Pipeline) buildPrompt(topic, level string) (string, error) {
	var buf bytes.Buffer
	data := promptData{
		Topic: topic,
		Level: level,
		Count: domain.DeckSize,
	}

	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// parseCards parses fence-stripped content as a JSON array of card objects
// and normalizes the result to exactly domain.DeckSize cards. Elements that
// are not objects, or that lack a question or answer field, are discarded;
// the deck is padded with filler cards or truncated as needed, preserving
// source order with fillers appended last.
func parseCards(content, topic string) ([]domain.Card, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(content), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}

	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: response is an empty array", generation.ErrMalformedResponse)
	}

	cards := make([]domain.Card, 0, domain.DeckSize)
	for _, element := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(element, &fields); err != nil {
			continue
		}

		question, ok := fields["question"]
		if !ok {
			continue
		}
		answer, ok := fields["answer"]
		if !ok {
			continue
		}

		card, err := domain.NewCard(coerceText(question), coerceText(answer))
		if err != nil {
			continue
		}

		cards = append(cards, card)
	}

	if len(cards) > domain.DeckSize {
		cards = cards[:domain.DeckSize]
	}

	for len(cards) < domain.DeckSize {
		cards = append(cards, domain.FillerCard(topic))
	}

	return cards, nil
}

// coerceText converts a JSON value to trimmed text: strings directly,
// anything else via its canonical JSON form.
func coerceText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

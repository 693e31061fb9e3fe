package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Fixed generation parameters, applied to every request. These are not
// tunable per request.
const (
	generationTemperature     = 0.7
	generationTopP            = 1.0
	generationTopK            = 40.0
	generationMaxOutputTokens = 1024
)

// Provider abstracts the external generative text service. The real
// implementation wraps the google.golang.org/genai client; tests supply
// fakes.
type Provider interface {
	// ListModels returns the identifiers of the models available to the
	// configured credential, in provider order.
	ListModels(ctx context.Context) ([]string, error)

	// Generate sends prompt to the named model and returns the reply in
	// extractable form. One round trip, no retries.
	Generate(ctx context.Context, model, prompt string) (*Response, error)
}

// ProviderFactory builds a Provider bound to the given API credential.
// Configure calls it on every (re)configuration so a rotated credential
// always yields a fresh client.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)

// genaiProvider implements Provider using the Gemini API.
type genaiProvider struct {
	client *genai.Client
}

// NewGenaiProvider creates a Provider backed by the Gemini API.
func NewGenaiProvider(ctx context.Context, apiKey string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &genaiProvider{client: client}, nil
}

func (p *genaiProvider) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for model, err := range p.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		names = append(names, model.Name)
	}
	return names, nil
}

func (p *genaiProvider) Generate(ctx context.Context, model, prompt string) (*Response, error) {
	temperature := float32(generationTemperature)
	topP := float32(generationTopP)
	topK := float32(generationTopK)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: generationMaxOutputTokens,
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, err
	}

	result := &Response{Text: resp.Text()}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				result.Fragments = append(result.Fragments, Fragment{Content: part.Text})
			}
		}
	}

	return result, nil
}

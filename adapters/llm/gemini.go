package llm

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"

	"orchidbreed/ports"
)

// GeminiClient implements LLMClient on the official genai client
type GeminiClient struct {
	cli         *genai.Client
	temperature float64
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{cli: cli, temperature: config.Temperature}, nil
}

func (g *GeminiClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (*ports.LLMResponse, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.temperature)),
	}
	if maxTokens > 0 {
		cfg.MaxOutputTokens = int32(maxTokens)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response missing candidates")
	}

	out := &ports.LLMResponse{
		Content: resp.Candidates[0].Content.Parts[0].Text,
		Usage:   &ports.UsageData{Model: model, Provider: "gemini"},
	}
	if m := resp.UsageMetadata; m != nil {
		out.Usage.PromptTokens = int(m.PromptTokenCount)
		out.Usage.CompletionTokens = int(m.CandidatesTokenCount)
		out.Usage.TotalTokens = int(m.TotalTokenCount)
	}
	return out, nil
}

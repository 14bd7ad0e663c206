package services

import (
	"context"
	"strings"

	"kotseai-backend/models"
	"kotseai-backend/utils/logger"

	genai "google.golang.org/genai"
)

// Generator is the text-generation oracle. Implementations never return an
// error: any transport or service failure yields an empty string, which the
// parsing layer treats as one more malformed-input case.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) string
}

// GeminiGenerator is a thin wrapper around the official genai client.
// Single attempt, no retry: a failed call degrades into an empty result
// downstream rather than blocking the request on a flaky upstream.
type GeminiGenerator struct {
	cli         *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	logger      logger.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator from config
func NewGeminiGenerator(ctx context.Context, cfg *models.Config, log logger.Logger) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	maxTokens := cfg.GeminiMaxOutTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	return &GeminiGenerator{
		cli:         cli,
		model:       model,
		temperature: cfg.GeminiTemperature,
		maxTokens:   maxTokens,
		logger:      log,
	}, nil
}

// GenerateText sends the prompt with low temperature and bounded output and
// returns the raw reply text, or "" on any failure.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) string {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(g.temperature),
			MaxOutputTokens: g.maxTokens,
		},
	)
	if err != nil {
		g.logger.Errorf("Generation call failed: %v", err)
		return ""
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		g.logger.Warn("Generation returned no candidates")
		return ""
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
}

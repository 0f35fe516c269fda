package services

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const defaultGeminiModel = "gemini-2.0-flash-exp"

// GeminiConfig holds the settings for the Gemini text model.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// NewGeminiModel builds the Gemini-backed llms.Model used by chat
// sessions. Everything past this constructor only sees the llms.Model
// interface, so tests swap in fakes with scripted turns.
func NewGeminiModel(ctx context.Context, cfg GeminiConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(model),
	)
}

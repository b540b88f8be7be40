package ai

import (
	"context"
	"fmt"

	"quantum-tutor/internal/config"
	"quantum-tutor/internal/domain"
	"quantum-tutor/internal/domain/ports/adapter"
)

// NewFromConfig builds the completion adapter for the configured provider.
// Precedence is Groq, then Gemini, then OpenAI; dev mode falls back to the
// canned adapter when no key is set. It returns the provider name for
// startup logging alongside the adapter.
func NewFromConfig(ctx context.Context, cfg config.AIConfig, dev bool) (adapter.AIServiceAdapter, string, error) {
	switch {
	case cfg.GroqKey != "":
		a, err := NewGroqAdapter(cfg.GroqKey, cfg.DefaultModel, cfg.GroqBaseURL, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, "", fmt.Errorf("groq adapter: %w", err)
		}
		return a, "groq", nil
	case cfg.GeminiKey != "":
		a, err := NewGeminiAdapter(ctx, cfg.GeminiKey, cfg.GeminiURL, cfg.DefaultModel, cfg.MaxTokens)
		if err != nil {
			return nil, "", fmt.Errorf("gemini adapter: %w", err)
		}
		return a, "gemini", nil
	case cfg.OpenAIKey != "":
		a, err := NewOpenAIAdapter(cfg.OpenAIKey, cfg.DefaultModel, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, "", fmt.Errorf("openai adapter: %w", err)
		}
		return a, "openai", nil
	case dev:
		return NewCannedAdapter(), "canned", nil
	}
	return nil, "", domain.ErrNoCompletionProvider
}

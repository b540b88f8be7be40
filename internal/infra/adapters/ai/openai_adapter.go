package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quantum-tutor/internal/domain/ports/adapter"
	"quantum-tutor/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.AIServiceAdapter = (*OpenAIAdapter)(nil)

// OpenAIAdapter implements adapter.AIServiceAdapter using the Chat
// Completions API.
type OpenAIAdapter struct {
	apiKey      string
	base        string // e.g., https://api.openai.com/v1
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

func NewOpenAIAdapter(apiKey, model string, temperature float64, maxTokens int) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIAdapter{
		apiKey:      apiKey,
		base:        "https://api.openai.com/v1",
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (o *OpenAIAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	if model == "" {
		model = o.model
	}
	return countTokensBPE(model, messages)
}

func (o *OpenAIAdapter) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	if model == "" {
		model = o.model
	}
	start := time.Now()
	reply, err := chatCompletions(ctx, o.client, o.base, o.apiKey, model, o.temperature, o.maxTokens, messages)
	metrics.ObserveCompletion("openai", model, err == nil, time.Since(start))
	return reply, err
}

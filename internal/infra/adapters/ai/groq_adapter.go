package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quantum-tutor/internal/domain"
	"quantum-tutor/internal/domain/ports/adapter"
	"quantum-tutor/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.AIServiceAdapter = (*GroqAdapter)(nil)

// GroqAdapter implements adapter.AIServiceAdapter against Groq's
// OpenAI-compatible gateway. Base URL defaults to
// https://api.groq.com/openai/v1 (configurable). Chat completions path is
// the same as OpenAI: /chat/completions. Authorization: Bearer <GROQ_API_KEY>
type GroqAdapter struct {
	apiKey      string
	base        string // e.g., https://api.groq.com/openai/v1
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

func NewGroqAdapter(apiKey, model, base string, temperature float64, maxTokens int) (*GroqAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("groq api key empty")
	}
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	return &GroqAdapter{
		apiKey:      apiKey,
		base:        strings.TrimRight(base, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *GroqAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	if model == "" {
		model = g.model
	}
	return countTokensBPE(model, messages)
}

func (g *GroqAdapter) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	if model == "" {
		model = g.model
	}
	start := time.Now()
	reply, err := chatCompletions(ctx, g.client, g.base, g.apiKey, model, g.temperature, g.maxTokens, messages)
	metrics.ObserveCompletion("groq", model, err == nil, time.Since(start))
	return reply, err
}

// chatCompletions performs one OpenAI-style chat completions round trip.
// Shared by the Groq and OpenAI adapters, which speak the same wire format.
func chatCompletions(ctx context.Context, client *http.Client, base, apiKey, model string, temperature float64, maxTokens int, messages []adapter.Message) (string, error) {
	// Build the request using the shared adapter.Message with JSON tags
	reqBody := struct {
		Model       string            `json:"model"`
		Messages    []adapter.Message `json:"messages"`
		Temperature float64           `json:"temperature,omitempty"`
		MaxTokens   int               `json:"max_tokens,omitempty"`
	}{Model: model, Messages: messages, Temperature: temperature, MaxTokens: maxTokens}

	b, _ := json.Marshal(reqBody)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, base+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat completions http %d: %w", resp.StatusCode, domain.ErrCompletionUnavailable)
	}

	var payload struct {
		Choices []struct {
			Message adapter.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	for _, c := range payload.Choices {
		if c.Message.Content != "" {
			return c.Message.Content, nil
		}
	}
	return "", fmt.Errorf("no choice content: %w", domain.ErrCompletionUnavailable)
}

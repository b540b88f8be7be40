//go:build !integration

// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"errors"

	"quantum-tutor/internal/domain/ports/adapter"
)

// fakeAI is a counting in-memory completion adapter used by unit tests. It
// records every prompt it receives and can be switched into failure mode.
type fakeAI struct {
	calls   int
	prompts []string
	reply   string
	err     error
}

func newFakeAI(reply string) *fakeAI {
	return &fakeAI{reply: reply}
}

func (f *fakeAI) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	return 0, errors.New("not counted")
}

func (f *fakeAI) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	f.calls++
	for _, m := range messages {
		f.prompts = append(f.prompts, m.Content)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeMetrics counts instrumentation calls so tests can assert what a turn
// recorded.
type fakeMetrics struct {
	queries      map[string]int
	degraded     int
	resets       int
	promptTokens int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{queries: make(map[string]int)}
}

func (m *fakeMetrics) IncQuery(category string) { m.queries[category]++ }

func (m *fakeMetrics) IncDegradedTurn() { m.degraded++ }

func (m *fakeMetrics) IncSessionReset() { m.resets++ }

func (m *fakeMetrics) AddPromptTokens(n int) { m.promptTokens += n }

package ai

import (
	"context"
	"time"

	"quantum-tutor/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*CannedAdapter)(nil)

// CannedAdapter implements adapter.AIServiceAdapter for local/dev runs
// without a provider credential. It returns a fixed tutoring answer instead
// of calling a real model.
type CannedAdapter struct{}

func NewCannedAdapter() *CannedAdapter {
	return &CannedAdapter{}
}

const cannedReply = "Great question! In short: a qubit can hold a blend of 0 and 1 at once " +
	"thanks to superposition, and measuring it picks one outcome. " +
	"(Dev mode: no completion provider configured, this is a canned answer.)"

func (a *CannedAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	return countTokensBPE("", messages)
}

func (a *CannedAdapter) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return cannedReply, nil
}

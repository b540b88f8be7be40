package ai

import (
	"github.com/pkoukk/tiktoken-go"

	"quantum-tutor/internal/domain/ports/adapter"
)

// countTokensBPE counts prompt tokens with tiktoken for OpenAI-family
// models. Best effort: unknown models fall back to cl100k_base.
func countTokensBPE(model string, messages []adapter.Message) (int, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return 0, err
		}
	}
	total := 0
	for _, m := range messages {
		// 4 tokens of per-message framing, matching the chat format overhead.
		total += 4 + len(enc.Encode(m.Content, nil, nil))
	}
	return total, nil
}

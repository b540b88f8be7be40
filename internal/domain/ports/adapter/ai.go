package adapter

import "context"

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// AIServiceAdapter is the port for the completion capability. The core
// treats the provider as opaque: given messages it returns generated text or
// fails. Model identity, temperature and token limits are adapter
// configuration, not part of the call contract. Calls are blocking round
// trips; timeouts come from the caller's context.
type AIServiceAdapter interface {
	// CountTokens must return prompt tokens for the provided messages
	// (provider-specific counting; best-effort when exact isn't available).
	CountTokens(ctx context.Context, model string, messages []Message) (int, error)

	// Chat returns only the assistant text. An empty model selects the
	// adapter's default.
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}

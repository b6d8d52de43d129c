package llm

import "context"

// Provider is the abstraction over a generative-text service. Each call is
// a single blocking round trip; timeouts and cancellation are the
// transport's responsibility via ctx.
type Provider interface {
	// Complete sends a prompt and returns the raw text reply. Replies may
	// be wrapped in markdown fences or carry leading prose; callers are
	// expected to parse defensively.
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Name identifies the provider for logs ("openai", "gemini", "mock").
	Name() string
}

// Prompt describes a single-turn completion request.
type Prompt struct {
	// System sets the model's role and constraints. Optional.
	System string

	// User is the instruction text.
	User string

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64

	// MaxTokens caps the reply length. Zero means provider default.
	MaxTokens int
}

package driven

import "context"

// LLMService synthesises free-text answers from a prompt.
//
// Implementations map provider-specific failures onto the domain error
// taxonomy: domain.ErrInvalidCredentials, domain.ErrQuotaExceeded,
// domain.ErrModelUnavailable, domain.ErrUpstreamTimeout and
// domain.ErrUpstream, so callers can present a distinct message per
// category without knowing which provider is behind the port.
//
// Implementations may include:
//   - Google Gemini (generateContent REST API)
//   - OpenAI (chat completions)
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

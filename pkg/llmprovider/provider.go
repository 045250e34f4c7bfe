package llmprovider

import "context"

// Provider defines the interface for text generation providers.
// Implementations are safe for concurrent use.
type Provider interface {
	// Generate sends a single-prompt generation request and returns the
	// generated text. The first candidate's text is returned trimmed of
	// surrounding whitespace; a well-formed response with no candidate
	// text yields FallbackReply instead of an error.
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized generation request.
type Request struct {
	Prompt string
	Config GenerationConfig
}

// GenerationConfig holds the recognized generation options.
// Values are passed through unmodified; range enforcement is the
// remote service's concern.
type GenerationConfig struct {
	MaxOutputTokens int
	Temperature     float64
	TopK            int
}

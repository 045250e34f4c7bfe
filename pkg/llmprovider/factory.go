package llmprovider

import (
	"fmt"

	"carcare-backend/pkg/gemini"
	"carcare-backend/pkg/openai"
)

// Config selects and configures the concrete provider for a deployment.
type Config struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	Model    string
	BaseURL  string // optional override, mainly for OpenAI-compatible gateways
}

// New builds the configured Provider.
func New(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: provider %s", ErrMissingAPIKey, cfg.Provider)
	}

	switch cfg.Provider {
	case "gemini":
		client := gemini.NewClient(cfg.APIKey)
		client.SetModel(cfg.Model)
		if cfg.BaseURL != "" {
			client.SetAPIURL(cfg.BaseURL)
		}
		return NewGeminiAdapter(client), nil
	case "openai":
		client := openai.NewClient(cfg.APIKey)
		client.SetModel(cfg.Model)
		if cfg.BaseURL != "" {
			client.SetBaseURL(cfg.BaseURL)
		}
		return NewOpenAIAdapter(client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

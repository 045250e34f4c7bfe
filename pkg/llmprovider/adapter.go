package llmprovider

import (
	"context"
	"strings"

	"carcare-backend/pkg/gemini"
	"carcare-backend/pkg/openai"
)

// IGeminiClient is the subset of pkg/gemini used by the adapter.
type IGeminiClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client IGeminiClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client IGeminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Generate implements Provider interface
func (a *GeminiAdapter) Generate(ctx context.Context, req Request) (string, error) {
	geminiReq := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: req.Prompt}}},
		},
	}
	if cfg := req.Config; cfg.MaxOutputTokens > 0 || cfg.Temperature > 0 || cfg.TopK > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
			TopK:            cfg.TopK,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return "", generationError(a.Name(), err)
	}

	var text string
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		text = resp.Candidates[0].Content.Parts[0].Text
	}
	return normalize(text), nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// IOpenAIClient is the subset of pkg/openai used by the adapter.
type IOpenAIClient interface {
	ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error)
	Model() string
}

// OpenAIAdapter adapts pkg/openai to the Provider interface.
// The chat completions API has no topK option, so that setting is not sent.
type OpenAIAdapter struct {
	client IOpenAIClient
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client IOpenAIClient) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Generate implements Provider interface
func (a *OpenAIAdapter) Generate(ctx context.Context, req Request) (string, error) {
	openaiReq := openai.ChatRequest{
		Messages:    []openai.Message{{Role: "user", Content: req.Prompt}},
		Temperature: req.Config.Temperature,
		MaxTokens:   req.Config.MaxOutputTokens,
	}

	resp, err := a.client.ChatCompletion(ctx, openaiReq)
	if err != nil {
		return "", generationError(a.Name(), err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}
	return normalize(text), nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// normalize trims the candidate text and substitutes the fallback
// reply when nothing was generated.
func normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackReply
	}
	return text
}

package llmprovider_test

import (
	"context"
	"errors"
	"testing"

	"carcare-backend/pkg/gemini"
	"carcare-backend/pkg/llmprovider"
	"carcare-backend/pkg/openai"
)

type mockGeminiClient struct {
	response *gemini.GenerateResponse
	err      error
	lastReq  gemini.GenerateRequest
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

type mockOpenAIClient struct {
	response *openai.ChatResponse
	err      error
	lastReq  openai.ChatRequest
}

func (m *mockOpenAIClient) ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockOpenAIClient) Model() string { return "openai-test" }

func TestGeminiAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("Trims First Candidate", func(t *testing.T) {
		client := &mockGeminiClient{response: &gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: "  hello there \n"}}}},
				{Content: gemini.Content{Parts: []gemini.Part{{Text: "second candidate"}}}},
			},
		}}
		adapter := llmprovider.NewGeminiAdapter(client)

		text, err := adapter.Generate(ctx, llmprovider.Request{Prompt: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "hello there" {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("Config Passed Through", func(t *testing.T) {
		client := &mockGeminiClient{response: &gemini.GenerateResponse{
			Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: "ok"}}}}},
		}}
		adapter := llmprovider.NewGeminiAdapter(client)

		_, err := adapter.Generate(ctx, llmprovider.Request{
			Prompt: "hi",
			Config: llmprovider.GenerationConfig{MaxOutputTokens: 150, Temperature: 0.7, TopK: 40},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := client.lastReq.GenerationConfig
		if cfg == nil || cfg.MaxOutputTokens != 150 || cfg.Temperature != 0.7 || cfg.TopK != 40 {
			t.Errorf("generation config not passed through: %+v", cfg)
		}
	})

	t.Run("Empty Candidates Yields Fallback", func(t *testing.T) {
		client := &mockGeminiClient{response: &gemini.GenerateResponse{}}
		adapter := llmprovider.NewGeminiAdapter(client)

		text, err := adapter.Generate(ctx, llmprovider.Request{Prompt: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != llmprovider.FallbackReply {
			t.Errorf("text = %q, want fallback", text)
		}
	})

	t.Run("Whitespace Only Candidate Yields Fallback", func(t *testing.T) {
		client := &mockGeminiClient{response: &gemini.GenerateResponse{
			Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: "   \n"}}}}},
		}}
		adapter := llmprovider.NewGeminiAdapter(client)

		text, _ := adapter.Generate(ctx, llmprovider.Request{Prompt: "hi"})
		if text != llmprovider.FallbackReply {
			t.Errorf("text = %q, want fallback", text)
		}
	})

	t.Run("Errors Collapse To ErrGenerationFailed", func(t *testing.T) {
		client := &mockGeminiClient{err: errors.New("connection refused")}
		adapter := llmprovider.NewGeminiAdapter(client)

		_, err := adapter.Generate(ctx, llmprovider.Request{Prompt: "hi"})
		if !errors.Is(err, llmprovider.ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})
}

func TestOpenAIAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("First Choice Trimmed", func(t *testing.T) {
		client := &mockOpenAIClient{response: &openai.ChatResponse{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: " hi! "}}},
		}}
		adapter := llmprovider.NewOpenAIAdapter(client)

		text, err := adapter.Generate(ctx, llmprovider.Request{Prompt: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "hi!" {
			t.Errorf("text = %q", text)
		}
		if len(client.lastReq.Messages) != 1 || client.lastReq.Messages[0].Content != "hello" {
			t.Errorf("unexpected request %+v", client.lastReq)
		}
	})

	t.Run("No Choices Yields Fallback", func(t *testing.T) {
		client := &mockOpenAIClient{response: &openai.ChatResponse{}}
		adapter := llmprovider.NewOpenAIAdapter(client)

		text, _ := adapter.Generate(ctx, llmprovider.Request{Prompt: "hello"})
		if text != llmprovider.FallbackReply {
			t.Errorf("text = %q, want fallback", text)
		}
	})

	t.Run("Errors Collapse To ErrGenerationFailed", func(t *testing.T) {
		client := &mockOpenAIClient{err: errors.New("401 unauthorized")}
		adapter := llmprovider.NewOpenAIAdapter(client)

		_, err := adapter.Generate(ctx, llmprovider.Request{Prompt: "hello"})
		if !errors.Is(err, llmprovider.ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})
}

func TestFactory(t *testing.T) {
	t.Run("Gemini", func(t *testing.T) {
		p, err := llmprovider.New(llmprovider.Config{Provider: "gemini", APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != "gemini" {
			t.Errorf("name = %q", p.Name())
		}
	})

	t.Run("OpenAI", func(t *testing.T) {
		p, err := llmprovider.New(llmprovider.Config{Provider: "openai", APIKey: "k", Model: "gpt-4o"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != "openai" || p.Model() != "gpt-4o" {
			t.Errorf("unexpected provider %s/%s", p.Name(), p.Model())
		}
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		if _, err := llmprovider.New(llmprovider.Config{Provider: "claude", APIKey: "k"}); !errors.Is(err, llmprovider.ErrUnknownProvider) {
			t.Errorf("expected ErrUnknownProvider, got %v", err)
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := llmprovider.New(llmprovider.Config{Provider: "gemini"}); !errors.Is(err, llmprovider.ErrMissingAPIKey) {
			t.Errorf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}

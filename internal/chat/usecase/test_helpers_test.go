package usecase_test

import (
	"context"

	"carcare-backend/internal/chat"
	"carcare-backend/internal/chat/repository"
	"carcare-backend/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockProvider implements llmprovider.Provider
type mockProvider struct {
	generateFunc func(req llmprovider.Request) (string, error)
	calls        int
}

func (m *mockProvider) Generate(ctx context.Context, req llmprovider.Request) (string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(req)
	}
	return "generated reply", nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

// mockTranscriptRepo implements repository.TranscriptRepository
type mockTranscriptRepo struct {
	insertFunc func(opt repository.InsertExchangeOptions) (chat.TranscriptEntry, error)
	listFunc   func(opt repository.ListExchangesOptions) ([]chat.TranscriptEntry, error)
	inserted   []repository.InsertExchangeOptions
}

func (m *mockTranscriptRepo) InsertExchange(ctx context.Context, opt repository.InsertExchangeOptions) (chat.TranscriptEntry, error) {
	m.inserted = append(m.inserted, opt)
	if m.insertFunc != nil {
		return m.insertFunc(opt)
	}
	return chat.TranscriptEntry{
		UserMessage: opt.UserMessage,
		BotResponse: opt.BotResponse,
		Timestamp:   opt.Timestamp,
	}, nil
}

func (m *mockTranscriptRepo) ListExchanges(ctx context.Context, opt repository.ListExchangesOptions) ([]chat.TranscriptEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

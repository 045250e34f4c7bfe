package usecase_test

import (
	"context"
	"errors"
	"testing"

	"carcare-backend/internal/contact"
	"carcare-backend/internal/contact/repository"
	"carcare-backend/internal/contact/usecase"
)

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

type mockContactRepo struct {
	insertFunc func(opt repository.InsertMessageOptions) (contact.Message, error)
}

func (m *mockContactRepo) InsertMessage(ctx context.Context, opt repository.InsertMessageOptions) (contact.Message, error) {
	if m.insertFunc != nil {
		return m.insertFunc(opt)
	}
	return contact.Message{ID: opt.ID}, nil
}

func TestCreateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Fields", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockContactRepo{})
		_, err := uc.Create(ctx, contact.CreateInput{Name: "Jo", Email: "jo@example.com"})
		if !errors.Is(err, contact.ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("Assigns ID And Timestamp", func(t *testing.T) {
		var got repository.InsertMessageOptions
		repo := &mockContactRepo{
			insertFunc: func(opt repository.InsertMessageOptions) (contact.Message, error) {
				got = opt
				return contact.Message{ID: opt.ID}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)

		_, err := uc.Create(ctx, contact.CreateInput{
			Name: "Jo", Email: "jo@example.com", Body: "Do you sell winter tires?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Error("no ID assigned")
		}
		if got.CreatedAt.IsZero() {
			t.Error("no CreatedAt assigned")
		}
	})

	t.Run("Repository Error Surfaces", func(t *testing.T) {
		repo := &mockContactRepo{
			insertFunc: func(opt repository.InsertMessageOptions) (contact.Message, error) {
				return contact.Message{}, repository.ErrFailedToInsert
			},
		}
		uc := usecase.New(&mockLogger{}, repo)

		_, err := uc.Create(ctx, contact.CreateInput{
			Name: "Jo", Email: "jo@example.com", Body: "Do you sell winter tires?",
		})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

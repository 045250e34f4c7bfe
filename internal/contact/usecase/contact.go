package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carcare-backend/internal/contact"
	"carcare-backend/internal/contact/repository"
)

// Create inserts a new contact message.
func (uc *implUseCase) Create(ctx context.Context, input contact.CreateInput) (contact.CreateOutput, error) {
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return contact.CreateOutput{}, contact.ErrMissingFields
	}

	created, err := uc.repo.InsertMessage(ctx, repository.InsertMessageOptions{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Body:      input.Body,
		CreatedAt: time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "contact/usecase.Create: %v", err)
		return contact.CreateOutput{}, err
	}

	return contact.CreateOutput{Message: created}, nil
}

package repository

import (
	"context"

	"carcare-backend/internal/contact"
)

// ContactRepository is the contact-message data store.
type ContactRepository interface {
	InsertMessage(ctx context.Context, opt InsertMessageOptions) (contact.Message, error)
}

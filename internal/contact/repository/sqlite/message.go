package sqlite

import (
	"context"

	"carcare-backend/internal/contact"
	repo "carcare-backend/internal/contact/repository"
)

// InsertMessage inserts a new contact message and returns the created entity.
func (r *implRepository) InsertMessage(ctx context.Context, opt repo.InsertMessageOptions) (contact.Message, error) {
	const query = `
		INSERT INTO contact_messages (id, name, email, body, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Email, opt.Body, opt.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertMessage"), err)
		return contact.Message{}, repo.ErrFailedToInsert
	}

	return contact.Message{
		ID:        opt.ID,
		Name:      opt.Name,
		Email:     opt.Email,
		Body:      opt.Body,
		CreatedAt: opt.CreatedAt,
	}, nil
}

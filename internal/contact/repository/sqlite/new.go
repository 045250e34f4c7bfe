package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"carcare-backend/internal/contact/repository"
	"carcare-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed ContactRepository.
func New(db *sql.DB, l log.Logger) repository.ContactRepository {
	if db == nil {
		panic("contact/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the contact_messages table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("contact/repository/sqlite.%s", method)
}

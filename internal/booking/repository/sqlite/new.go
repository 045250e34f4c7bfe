package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"carcare-backend/internal/booking/repository"
	"carcare-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed BookingRepository.
func New(db *sql.DB, l log.Logger) repository.BookingRepository {
	if db == nil {
		panic("booking/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the bookings table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS bookings (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT,
			service    TEXT NOT NULL,
			date       TIMESTAMP NOT NULL,
			notes      TEXT,
			created_at TIMESTAMP NOT NULL
		)`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/sqlite.%s", method)
}

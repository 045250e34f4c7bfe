package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"carcare-backend/internal/chat/repository"
	"carcare-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed TranscriptRepository.
func New(db *sql.DB, l log.Logger) repository.TranscriptRepository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the transcript table if it does not exist.
// Called once at startup before the repository is used.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS chat_exchanges (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			user_message TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			created_at   TIMESTAMP NOT NULL
		)`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}

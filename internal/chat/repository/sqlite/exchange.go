package sqlite

import (
	"context"

	"carcare-backend/internal/chat"
	repo "carcare-backend/internal/chat/repository"
)

// InsertExchange appends one transcript entry and returns it.
func (r *implRepository) InsertExchange(ctx context.Context, opt repo.InsertExchangeOptions) (chat.TranscriptEntry, error) {
	const query = `
		INSERT INTO chat_exchanges (user_message, bot_response, created_at)
		VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, opt.UserMessage, opt.BotResponse, opt.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertExchange"), err)
		return chat.TranscriptEntry{}, repo.ErrFailedToInsert
	}

	return chat.TranscriptEntry{
		UserMessage: opt.UserMessage,
		BotResponse: opt.BotResponse,
		Timestamp:   opt.Timestamp,
	}, nil
}

// ListExchanges returns the most recent entries, newest first.
func (r *implRepository) ListExchanges(ctx context.Context, opt repo.ListExchangesOptions) ([]chat.TranscriptEntry, error) {
	const query = `
		SELECT user_message, bot_response, created_at
		FROM chat_exchanges
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExchanges"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []chat.TranscriptEntry
	for rows.Next() {
		var entry chat.TranscriptEntry
		if err := rows.Scan(&entry.UserMessage, &entry.BotResponse, &entry.Timestamp); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListExchanges"), err)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}

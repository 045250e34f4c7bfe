package repository

import (
	"context"

	"carcare-backend/internal/chat"
)

// TranscriptRepository is the append-only transcript store.
// Entries are never updated or deleted here; retention is an
// operational concern outside this service.
type TranscriptRepository interface {
	InsertExchange(ctx context.Context, opt InsertExchangeOptions) (chat.TranscriptEntry, error)
	ListExchanges(ctx context.Context, opt ListExchangesOptions) ([]chat.TranscriptEntry, error)
}

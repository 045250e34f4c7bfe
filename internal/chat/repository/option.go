package repository

import "time"

// InsertExchangeOptions holds parameters for appending a transcript entry.
type InsertExchangeOptions struct {
	UserMessage string
	BotResponse string
	Timestamp   time.Time
}

// ListExchangesOptions holds parameters for reading the transcript.
// Results are always ordered newest first.
type ListExchangesOptions struct {
	Limit int
}

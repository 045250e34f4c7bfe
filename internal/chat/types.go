package chat

import "time"

// TranscriptEntry is one persisted user/bot exchange.
// Created exactly once per successfully generated reply, immutable after that.
// Rejected and canned replies never produce an entry.
type TranscriptEntry struct {
	UserMessage string
	BotResponse string
	Timestamp   time.Time
}

// --- UseCase Inputs ---

type AskInput struct {
	Message string
}

type HistoryInput struct {
	// Limit overrides the configured history limit when positive.
	Limit int
}

// --- UseCase Outputs ---

type AskOutput struct {
	Reply string
}

type HistoryOutput struct {
	Entries []TranscriptEntry
}

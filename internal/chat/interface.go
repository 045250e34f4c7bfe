package chat

import "context"

type UseCase interface {
	// Ask answers a customer message: rejected, canned, or generated.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)

	// History returns the most recent transcript entries, newest first.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}

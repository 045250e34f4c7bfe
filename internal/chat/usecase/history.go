package usecase

import (
	"context"

	"carcare-backend/internal/chat"
	"carcare-backend/internal/chat/repository"
)

// History returns the most recent transcript entries, newest first.
// The configured limit applies unless the input overrides it with a
// smaller positive value.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	limit := uc.historyLimit
	if input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}

	entries, err := uc.repo.ListExchanges(ctx, repository.ListExchangesOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.History: %v", err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Entries: entries}, nil
}

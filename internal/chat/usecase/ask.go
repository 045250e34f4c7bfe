package usecase

import (
	"context"
	"time"

	"carcare-backend/internal/chat"
	"carcare-backend/internal/chat/repository"
	"carcare-backend/internal/classify"
	"carcare-backend/pkg/llmprovider"
)

// Ask routes the message and answers it. Only the delegate branch calls
// the generation service, and only a successful generation is persisted.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	decision := uc.router.Route(input.Message)

	switch decision.Route {
	case classify.RouteReject:
		return chat.AskOutput{Reply: chat.OutOfDomainReply}, nil
	case classify.RouteCanned:
		return chat.AskOutput{Reply: decision.Reply}, nil
	}

	reply, err := uc.provider.Generate(ctx, llmprovider.Request{
		Prompt: decision.Prompt,
		Config: uc.genConfig,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.Ask: generate via %s: %v", uc.provider.Name(), err)
		return chat.AskOutput{}, chat.ErrGenerationFailed
	}

	// Transcript write is best effort: the reply is already decided and a
	// failed write must not change the outcome.
	if _, err := uc.repo.InsertExchange(ctx, repository.InsertExchangeOptions{
		UserMessage: input.Message,
		BotResponse: reply,
		Timestamp:   time.Now(),
	}); err != nil {
		uc.l.Warnf(ctx, "chat/usecase.Ask: transcript write failed: %v", err)
	}

	return chat.AskOutput{Reply: reply}, nil
}

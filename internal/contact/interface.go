package contact

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}

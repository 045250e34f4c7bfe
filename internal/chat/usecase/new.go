package usecase

import (
	"carcare-backend/internal/chat"
	"carcare-backend/internal/chat/repository"
	"carcare-backend/internal/classify"
	"carcare-backend/pkg/llmprovider"
	pkgLog "carcare-backend/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	router       *classify.Router
	provider     llmprovider.Provider
	repo         repository.TranscriptRepository
	genConfig    llmprovider.GenerationConfig
	historyLimit int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	router *classify.Router,
	provider llmprovider.Provider,
	repo repository.TranscriptRepository,
	genConfig llmprovider.GenerationConfig,
	historyLimit int,
) *implUseCase {
	if historyLimit <= 0 {
		historyLimit = chat.DefaultHistoryLimit
	}
	return &implUseCase{
		l:            l,
		router:       router,
		provider:     provider,
		repo:         repo,
		genConfig:    genConfig,
		historyLimit: historyLimit,
	}
}

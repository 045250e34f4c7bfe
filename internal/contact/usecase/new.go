package usecase

import (
	"carcare-backend/internal/contact/repository"
	pkgLog "carcare-backend/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ContactRepository
}

// New creates a new contact UseCase instance.
func New(l pkgLog.Logger, repo repository.ContactRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

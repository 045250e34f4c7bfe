package usecase

import (
	"carcare-backend/internal/booking/repository"
	pkgLog "carcare-backend/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.BookingRepository
}

// New creates a new booking UseCase instance.
func New(l pkgLog.Logger, repo repository.BookingRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

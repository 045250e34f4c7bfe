package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carcare-backend/internal/booking"
	"carcare-backend/internal/booking/repository"
)

const defaultListLimit = 50

// Create inserts a new booking request.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if input.Name == "" || input.Email == "" || input.Service == "" || input.Date.IsZero() {
		return booking.CreateOutput{}, booking.ErrMissingFields
	}

	created, err := uc.repo.InsertBooking(ctx, repository.InsertBookingOptions{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "booking/usecase.Create: %v", err)
		return booking.CreateOutput{}, err
	}

	return booking.CreateOutput{Booking: created}, nil
}

// List returns recent bookings for the staff view, newest first.
func (uc *implUseCase) List(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	bookings, err := uc.repo.ListBookings(ctx, repository.ListBookingsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "booking/usecase.List: %v", err)
		return booking.ListOutput{}, err
	}

	return booking.ListOutput{Bookings: bookings}, nil
}

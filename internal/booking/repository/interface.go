package repository

import (
	"context"

	"carcare-backend/internal/booking"
)

// BookingRepository is the booking data store.
type BookingRepository interface {
	InsertBooking(ctx context.Context, opt InsertBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
}

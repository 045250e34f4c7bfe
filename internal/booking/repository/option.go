package repository

import "time"

// InsertBookingOptions holds parameters for inserting a new Booking.
type InsertBookingOptions struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Service   string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// ListBookingsOptions holds parameters for listing Bookings, newest first.
type ListBookingsOptions struct {
	Limit int
}

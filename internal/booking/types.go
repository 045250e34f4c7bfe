package booking

import "time"

// Booking is a service appointment request submitted by a customer.
type Booking struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Service   string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    time.Time
	Notes   string
}

type ListInput struct {
	Limit int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Booking Booking
}

type ListOutput struct {
	Bookings []Booking
}

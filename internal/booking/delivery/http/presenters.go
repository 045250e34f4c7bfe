package http

import (
	"time"

	"carcare-backend/internal/booking"
	"carcare-backend/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=255"`
	Email   string `json:"email"   binding:"required,email"`
	Phone   string `json:"phone"   binding:"max=32"`
	Service string `json:"service" binding:"required,min=1,max=255"`
	Date    string `json:"date"    binding:"required"`
	Notes   string `json:"notes"   binding:"max=1000"`
}

func (r createReq) toInput(date time.Time) booking.CreateInput {
	return booking.CreateInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Date:    date,
		Notes:   r.Notes,
	}
}

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{Limit: r.Limit}
}

// --- Response DTOs ---

type bookingResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Service   string            `json:"service"`
	Date      response.Date     `json:"date"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Service:   b.Service,
		Date:      response.Date(b.Date),
		Notes:     b.Notes,
		CreatedAt: response.DateTime(b.CreatedAt),
	}
}

type createResp struct {
	Booking bookingResp `json:"booking"`
}

func (h *handler) newCreateResp(out booking.CreateOutput) createResp {
	return createResp{Booking: newBookingResp(out.Booking)}
}

type listResp struct {
	Bookings []bookingResp `json:"bookings"`
}

func (h *handler) newListResp(out booking.ListOutput) listResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return listResp{Bookings: bookings}
}

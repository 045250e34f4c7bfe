package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"carcare-backend/internal/booking"
)

// processCreateReq binds and validates the create booking request body.
// The date field accepts YYYY-MM-DD or RFC 3339.
func (h *handler) processCreateReq(c *gin.Context) (booking.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return booking.CreateInput{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return booking.CreateInput{}, booking.ErrMissingFields
		}
	}

	return req.toInput(date), nil
}

// processListReq binds the list bookings query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

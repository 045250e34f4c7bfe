package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"carcare-backend/internal/booking"
	"carcare-backend/pkg/response"
)

// respondError writes the client-facing response for a failed operation.
// Validation errors are the caller's fault; anything else is a server
// failure whose cause is already logged and must stay generic.
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrMissingFields) {
		response.Error(c, err)
		return
	}
	response.InternalError(c)
}

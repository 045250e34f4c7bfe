package http

import (
	"github.com/gin-gonic/gin"

	"carcare-backend/pkg/response"
)

// Create godoc
// @Summary     Create a booking
// @Description Submits a service appointment request.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List bookings
// @Description Returns recent booking requests, newest first.
// @Tags        Booking
// @Produce     json
// @Param       limit query int false "Page size (default: 50)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/bookings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newListResp(output))
}

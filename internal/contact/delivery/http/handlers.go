package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"carcare-backend/internal/contact"
	"carcare-backend/pkg/response"
)

// --- DTOs ---

type createReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=255"`
	Email   string `json:"email"   binding:"required,email"`
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

func (r createReq) toInput() contact.CreateInput {
	return contact.CreateInput{
		Name:  r.Name,
		Email: r.Email,
		Body:  r.Message,
	}
}

type createResp struct {
	ID        string            `json:"id"`
	CreatedAt response.DateTime `json:"created_at"`
}

// Create godoc
// @Summary     Submit a contact message
// @Description Stores a contact-form submission from a customer.
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Contact data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/contacts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, contact.ErrMissingFields)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		if errors.Is(err, contact.ErrMissingFields) {
			response.Error(c, err)
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, createResp{
		ID:        output.Message.ID,
		CreatedAt: response.DateTime(output.Message.CreatedAt),
	})
}

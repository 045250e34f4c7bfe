package http

import (
	"github.com/gin-gonic/gin"

	"carcare-backend/internal/contact"
	"carcare-backend/pkg/log"
)

// Handler is the public interface for the contact HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contact.UseCase
}

// New creates a new HTTP handler for the contact domain.
func New(l log.Logger, uc contact.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

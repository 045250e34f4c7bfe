package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the contact endpoints under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/contacts", h.Create)
}

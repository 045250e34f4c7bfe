package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the booking endpoints under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
}

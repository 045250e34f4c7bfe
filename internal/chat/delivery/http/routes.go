package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Ask)
	rg.GET("/chat/history", h.History)
}

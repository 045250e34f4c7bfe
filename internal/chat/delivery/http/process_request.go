package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"carcare-backend/internal/chat"
)

// processAskReq binds and validates the chat request body.
// A missing, non-string, or whitespace-only message is a validation
// error; the original message is passed through untouched otherwise.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, chat.ErrMessageRequired
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, chat.ErrMessageRequired
	}
	return req, nil
}

// processHistoryReq reads the optional limit query parameter. Anything
// unparseable or non-positive falls back to the configured limit.
func (h *handler) processHistoryReq(c *gin.Context) chat.HistoryInput {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return chat.HistoryInput{}
	}
	return chat.HistoryInput{Limit: limit}
}

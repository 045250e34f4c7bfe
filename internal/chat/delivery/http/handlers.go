package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carcare-backend/pkg/response"
)

const (
	messageRequiredReply   = "Message is required."
	generationFailureReply = "Error connecting to the assistant service."
)

// Ask godoc
// @Summary     Ask the assistant
// @Description Answers a car-related question. Out-of-domain messages get a fixed reply; service requests get a booking recommendation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Customer message"
// @Success     200 {object} askResp
// @Failure     400 {object} askResp "Missing message"
// @Failure     500 {object} askResp "Generation service unreachable"
// @Router      /api/chat [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, askResp{Reply: messageRequiredReply})
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		c.JSON(http.StatusInternalServerError, askResp{Reply: generationFailureReply})
		return
	}

	c.JSON(http.StatusOK, askResp{Reply: output.Reply})
}

// History godoc
// @Summary     Chat history
// @Description Returns the most recent transcript entries, newest first.
// @Tags        Chat
// @Produce     json
// @Param       limit query int false "Return at most this many entries"
// @Success     200 {array}  historyEntryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, h.processHistoryReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, h.newHistoryResp(output))
}

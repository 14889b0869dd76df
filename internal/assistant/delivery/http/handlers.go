package http

import (
	"github.com/gin-gonic/gin"

	"canvas-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the assistant
// @Description Classifies the question, fetches the LMS data it needs and answers in natural language. Omit session_id to start a new conversation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Question"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Query: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newQueryResp(out))
}

// History godoc
// @Summary     Conversation history
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Router      /api/v1/assistant/sessions/{id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("id")

	exchanges, err := h.uc.History(ctx, sessionID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(sessionID, exchanges))
}

// Reset godoc
// @Summary     Clear a conversation
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/assistant/sessions/{id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

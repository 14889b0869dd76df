package http

import (
	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/model"
)

// processQueryReq binds the body and builds the caller scope.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, model.Scope, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc := model.Scope{
		UserID:  c.ClientIP(),
		Channel: "http",
	}
	return req, sc, nil
}

package http

import (
	"github.com/gin-gonic/gin"
)

// processAggregateReq binds and validates the explicit intent body.
func (h *handler) processAggregateReq(c *gin.Context) (aggregateReq, error) {
	var req aggregateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

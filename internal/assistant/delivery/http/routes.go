package http

import (
	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Query)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.History)
		sessions.DELETE("/:id", h.Reset)
	}
}

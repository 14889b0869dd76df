package http

import (
	"canvas-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the LMS endpoints onto rg. Routes that trigger
// upstream fan-out are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/me", h.Me)
	rg.GET("/courses", h.Courses)
	rg.GET("/deadlines", h.Deadlines)
	rg.POST("/deadlines/export", mw.RateLimit(), h.ExportDeadlines)
	rg.POST("/aggregate", mw.RateLimit(), h.Aggregate)

	cacheGroup := rg.Group("/cache")
	{
		cacheGroup.GET("/stats", h.CacheStats)
		cacheGroup.DELETE("", h.PurgeCache)
	}
}

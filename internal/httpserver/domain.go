package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "canvas-assistant/internal/assistant/delivery/http"
	lmsHTTP "canvas-assistant/internal/lms/delivery/http"
)

// setupLMSDomain registers /api/v1/lms.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupLMSDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := lmsHTTP.New(srv.l, srv.lmsUC)
	lmsHTTP.RegisterRoutes(api.Group("/lms"), h, srv.mw)

	srv.l.Infof(ctx, "LMS domain registered")
	return nil
}

// setupAssistantDomain registers /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}

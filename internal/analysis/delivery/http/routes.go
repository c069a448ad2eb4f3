package http

import (
	"github.com/gin-gonic/gin"

	"minwon-analytics/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Analysis
// calls fan out to the upstream API, so they are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	analyze := rg.Group("/analyze")
	{
		analyze.POST("", mw.RateLimit(), h.Analyze)
		analyze.GET("/intent", h.Interpret)
	}
}

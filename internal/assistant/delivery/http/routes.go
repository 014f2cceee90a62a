package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Assistant
// turns are rate limited: each one can cost a model call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, rateLimitPerMin int) {
	asst := rg.Group("/assistant")
	{
		asst.POST("/messages", mw.RateLimit(rateLimitPerMin), h.Process)
	}
}

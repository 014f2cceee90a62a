package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/:year/:month", h.Month)
		cal.POST("/export/:id", h.ExportTask)
	}
}

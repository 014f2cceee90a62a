package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/quick-add", h.QuickAdd)
		tasks.GET("", h.List)
		tasks.GET("/timeline", h.Timeline)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.PUT("/:id", h.Update)
		tasks.PUT("/:id/date", h.AssignDate)
		tasks.DELETE("/:id", h.Delete)
	}
}

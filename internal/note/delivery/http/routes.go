package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	notes := rg.Group("/notes")
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", h.Update)
		notes.PUT("/:id/date", h.AssignDate)
		notes.DELETE("/:id", h.Delete)
	}
}

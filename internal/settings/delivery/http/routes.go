package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	s := rg.Group("/settings")
	{
		s.GET("", h.Get)
		s.PUT("/profile", h.UpdateProfile)
		s.PUT("/theme", h.SetTheme)
		s.PUT("/wallpaper", h.SetWallpaper)
		s.PUT("/api-key", h.SetAPIKey)
		s.POST("/onboarding", h.CompleteOnboarding)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/settings"
	"maxitask/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	UpdateProfile(c *gin.Context)
	SetTheme(c *gin.Context)
	SetWallpaper(c *gin.Context)
	SetAPIKey(c *gin.Context)
	CompleteOnboarding(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for the settings domain.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

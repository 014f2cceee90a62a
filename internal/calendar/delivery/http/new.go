package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/calendar"
	"maxitask/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Month(c *gin.Context)
	ExportTask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

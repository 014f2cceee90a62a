package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/category"
	"maxitask/pkg/log"
)

// Handler is the public interface for the category HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	SetActive(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates a new HTTP handler for the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/note"
	"maxitask/pkg/log"
)

// Handler is the public interface for the note HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	AssignDate(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc note.UseCase
}

// New creates a new HTTP handler for the note domain.
func New(l log.Logger, uc note.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

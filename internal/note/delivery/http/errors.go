package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/note"
	"maxitask/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case note.ErrNoteNotFound:
		response.NotFound(c, err)
	case note.ErrInvalidCategory, note.ErrInvalidDate:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/task"
	"maxitask/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case task.ErrTaskNotFound:
		response.NotFound(c, err)
	case task.ErrEmptyInput, task.ErrInvalidCategory, task.ErrInvalidTime, task.ErrInvalidDate:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}

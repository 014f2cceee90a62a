package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maxitask/internal/assistant"
	"maxitask/pkg/response"
)

// Process godoc
// @Summary     Send a message to the assistant
// @Description Runs one conversational turn. Extracted tasks and notes are merged into the app state before the reply is returned.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Message"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - a turn is already in flight"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case assistant.ErrEmptyInput:
		response.Error(c, err)
	case assistant.ErrBusy:
		response.ErrorWithStatus(c, http.StatusConflict, err)
	default:
		response.InternalError(c, err)
	}
}

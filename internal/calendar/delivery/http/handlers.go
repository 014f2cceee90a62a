package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"maxitask/internal/calendar"
	"maxitask/pkg/response"
)

// Month godoc
// @Summary     Month grid
// @Description Returns the 6x7 month grid with tasks and notes attached to their days.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/{year}/{month} [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, err)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Month(ctx, year, month)
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// ExportTask godoc
// @Summary     Export a task to Google Calendar
// @Description Pushes a scheduled task as a one-hour calendar event. Succeeds without a link when no calendar integration is configured.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request - task has no date"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/export/{id} [POST]
func (h *handler) ExportTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExportResp(output))
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case calendar.ErrTaskNotFound:
		response.NotFound(c, err)
	case calendar.ErrInvalidMonth, calendar.ErrNotScheduled:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}

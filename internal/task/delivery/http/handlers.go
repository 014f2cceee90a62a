package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick-add a task
// @Description Turns one free-text utterance into a single task and inserts it at the head of the list.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Utterance"
// @Success     200 {object} quickAddResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the ordered task list, newest first, with optional category filter.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Timeline godoc
// @Summary     Timeline projection
// @Description Projects uncompleted timed tasks into one-hour display events.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} timelineResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Timeline(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completed flag of a task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Toggle(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task; empty fields are left unchanged.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// AssignDate godoc
// @Summary     Assign a calendar date
// @Description Sets the task's calendar date; an empty date clears it.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body assignDateReq true "Date"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/date [PUT]
func (h *handler) AssignDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignDateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.AssignDate(ctx, req.ID, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.AssignDate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

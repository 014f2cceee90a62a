package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/pkg/response"
)

// Create godoc
// @Summary     Create a note
// @Description Creates a note at the head of the grid. All fields are optional; an empty category defaults to the active one.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List notes
// @Description Returns the ordered notes grid, newest first, with optional category filter.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [GET]
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

// Detail godoc
// @Summary     Get note detail
// @Description Returns a single note by its ID.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// Update godoc
// @Summary     Update a note
// @Description Replaces the note's content and bumps its last-modified timestamp.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Note data"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// AssignDate godoc
// @Summary     Assign a calendar date
// @Description Sets the note's calendar date; an empty date clears it.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Note ID"
// @Param       body body assignDateReq true "Date"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id}/date [PUT]
func (h *handler) AssignDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignDateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.AssignDate(ctx, req.ID, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.AssignDate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// Delete godoc
// @Summary     Delete a note
// @Description Permanently removes a note by ID.
// @Tags        Note
// @Accept      json
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

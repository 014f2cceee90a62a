package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/category"
	"maxitask/pkg/response"
)

type addReq struct {
	Name string `json:"name" binding:"required"`
}

type setActiveReq struct {
	Name string `json:"name" binding:"required"`
}

type listResp struct {
	Categories []string `json:"categories"`
	Active     string   `json:"active"`
}

// List godoc
// @Summary     List categories
// @Description Returns the ordered category set and the active category.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}
	active, err := h.uc.Active(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Active: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, listResp{Categories: categories, Active: active})
}

// Add godoc
// @Summary     Add a category
// @Description Appends a new category; the new category becomes the active one.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Category name"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/categories [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.Name)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, listResp{Categories: output.Categories, Active: output.Active})
}

// SetActive godoc
// @Summary     Set the active category
// @Description Makes an existing category the active one.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       body body setActiveReq true "Category name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/active [PUT]
func (h *handler) SetActive(c *gin.Context) {
	ctx := c.Request.Context()

	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetActive(ctx, req.Name); err != nil {
		h.l.Errorf(ctx, "uc.SetActive: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case category.ErrEmptyName:
		response.Error(c, err)
	case category.ErrDuplicateName:
		response.ErrorWithStatus(c, 409, err)
	case category.ErrCategoryNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"maxitask/internal/settings"
	"maxitask/pkg/response"
)

// Get godoc
// @Summary     Get settings
// @Description Returns the user profile and preferences. The stored API key is never returned, only whether one exists.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSettingsResp(s))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Updates the user's name and location.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateProfileReq true "Profile"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.UpdateProfile(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSettingsResp(s))
}

// SetTheme godoc
// @Summary     Set theme
// @Description Persists the selected theme.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body setThemeReq true "Theme"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/theme [PUT]
func (h *handler) SetTheme(c *gin.Context) {
	ctx := c.Request.Context()

	var req setThemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetTheme(ctx, req.ThemeID); err != nil {
		h.l.Errorf(ctx, "uc.SetTheme: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetWallpaper godoc
// @Summary     Set wallpaper
// @Description Persists the selected wallpaper.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body setWallpaperReq true "Wallpaper"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/wallpaper [PUT]
func (h *handler) SetWallpaper(c *gin.Context) {
	ctx := c.Request.Context()

	var req setWallpaperReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetWallpaper(ctx, req.WallpaperID); err != nil {
		h.l.Errorf(ctx, "uc.SetWallpaper: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetAPIKey godoc
// @Summary     Set the Gemini API key
// @Description Stores the user-supplied model credential. An empty key clears it.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body setAPIKeyReq true "Credential"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/api-key [PUT]
func (h *handler) SetAPIKey(c *gin.Context) {
	ctx := c.Request.Context()

	var req setAPIKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetAPIKey(ctx, req.Key); err != nil {
		h.l.Errorf(ctx, "uc.SetAPIKey: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// CompleteOnboarding godoc
// @Summary     Complete onboarding
// @Description Sets the profile and initial preferences in one shot and marks onboarding done.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body onboardingReq true "Onboarding data"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/onboarding [POST]
func (h *handler) CompleteOnboarding(c *gin.Context) {
	ctx := c.Request.Context()

	var req onboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.CompleteOnboarding(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteOnboarding: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSettingsResp(s))
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case settings.ErrEmptyName:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}

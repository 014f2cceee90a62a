package http

import (
	"maxitask/internal/settings"
)

// --- Request DTOs ---

type updateProfileReq struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

func (r updateProfileReq) toInput() settings.UpdateProfileInput {
	return settings.UpdateProfileInput{
		Name:     r.Name,
		Location: r.Location,
	}
}

type setThemeReq struct {
	ThemeID string `json:"theme_id" binding:"required"`
}

type setWallpaperReq struct {
	WallpaperID string `json:"wallpaper_id" binding:"required"`
}

type setAPIKeyReq struct {
	// Key may be empty: an empty value clears the stored credential.
	Key string `json:"key"`
}

type onboardingReq struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	ThemeID     string `json:"theme_id"`
	WallpaperID string `json:"wallpaper_id"`
}

func (r onboardingReq) toInput() settings.OnboardingInput {
	return settings.OnboardingInput{
		Name:        r.Name,
		Location:    r.Location,
		ThemeID:     r.ThemeID,
		WallpaperID: r.WallpaperID,
	}
}

// --- Response DTOs ---

// settingsResp deliberately omits the stored credential: only its presence
// is reported.
type settingsResp struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	HasOnboarded bool   `json:"has_onboarded"`
	ThemeID      string `json:"theme_id"`
	WallpaperID  string `json:"wallpaper_id"`
	HasAPIKey    bool   `json:"has_api_key"`
}

func newSettingsResp(s settings.Settings) settingsResp {
	return settingsResp{
		Name:         s.Profile.Name,
		Location:     s.Profile.Location,
		HasOnboarded: s.Profile.HasOnboarded,
		ThemeID:      s.ThemeID,
		WallpaperID:  s.WallpaperID,
		HasAPIKey:    s.HasAPIKey,
	}
}

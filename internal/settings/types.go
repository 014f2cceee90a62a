package settings

import "maxitask/internal/model"

// Settings is the client-facing view of user preferences. The Gemini API key
// itself is never included; HasAPIKey only reports whether one is stored.
type Settings struct {
	Profile     model.UserProfile
	ThemeID     string
	WallpaperID string
	HasAPIKey   bool
}

// OnboardingInput completes the first-run flow in one shot.
type OnboardingInput struct {
	Name        string
	Location    string
	ThemeID     string
	WallpaperID string
}

type UpdateProfileInput struct {
	Name     string
	Location string
}

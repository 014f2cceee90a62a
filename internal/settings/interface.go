package settings

import "context"

// UseCase manages user preferences and the stored Gemini credential.
type UseCase interface {
	Get(ctx context.Context) (Settings, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (Settings, error)
	SetTheme(ctx context.Context, themeID string) error
	SetWallpaper(ctx context.Context, wallpaperID string) error
	SetAPIKey(ctx context.Context, key string) error
	CompleteOnboarding(ctx context.Context, input OnboardingInput) (Settings, error)

	// APIKey returns the raw stored credential for internal callers.
	// It is never exposed through Get.
	APIKey(ctx context.Context) string
}

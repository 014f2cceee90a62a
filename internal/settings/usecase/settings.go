package usecase

import (
	"context"
	"strings"

	"maxitask/internal/settings"
)

func (uc *implUseCase) Get(ctx context.Context) (settings.Settings, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.snapshot(), nil
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, input settings.UpdateProfileInput) (settings.Settings, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return settings.Settings{}, settings.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := uc.profile
	uc.profile.Name = name
	uc.profile.Location = strings.TrimSpace(input.Location)
	if err := uc.persistProfile(); err != nil {
		uc.profile = prev
		uc.l.Errorf(ctx, "uc.UpdateProfile persist: %v", err)
		return settings.Settings{}, err
	}

	return uc.snapshot(), nil
}

func (uc *implUseCase) SetTheme(ctx context.Context, themeID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.db.SetKV(kvTheme, themeID); err != nil {
		uc.l.Errorf(ctx, "uc.SetTheme persist: %v", err)
		return err
	}
	uc.themeID = themeID
	return nil
}

func (uc *implUseCase) SetWallpaper(ctx context.Context, wallpaperID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.db.SetKV(kvWallpaper, wallpaperID); err != nil {
		uc.l.Errorf(ctx, "uc.SetWallpaper persist: %v", err)
		return err
	}
	uc.wallpaperID = wallpaperID
	return nil
}

// SetAPIKey stores the raw credential. An empty key clears it, which drops
// the assistant back to its no-credential behavior.
func (uc *implUseCase) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.db.SetKV(kvAPIKey, key); err != nil {
		uc.l.Errorf(ctx, "uc.SetAPIKey persist: %v", err)
		return err
	}
	uc.apiKey = key
	return nil
}

func (uc *implUseCase) CompleteOnboarding(ctx context.Context, input settings.OnboardingInput) (settings.Settings, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return settings.Settings{}, settings.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := uc.profile
	uc.profile.Name = name
	uc.profile.Location = strings.TrimSpace(input.Location)
	uc.profile.HasOnboarded = true
	if err := uc.persistProfile(); err != nil {
		uc.profile = prev
		uc.l.Errorf(ctx, "uc.CompleteOnboarding persist profile: %v", err)
		return settings.Settings{}, err
	}

	if input.ThemeID != "" {
		if err := uc.db.SetKV(kvTheme, input.ThemeID); err != nil {
			uc.l.Errorf(ctx, "uc.CompleteOnboarding persist theme: %v", err)
			return settings.Settings{}, err
		}
		uc.themeID = input.ThemeID
	}
	if input.WallpaperID != "" {
		if err := uc.db.SetKV(kvWallpaper, input.WallpaperID); err != nil {
			uc.l.Errorf(ctx, "uc.CompleteOnboarding persist wallpaper: %v", err)
			return settings.Settings{}, err
		}
		uc.wallpaperID = input.WallpaperID
	}

	return uc.snapshot(), nil
}

func (uc *implUseCase) APIKey(ctx context.Context) string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.apiKey
}

// snapshot must be called with the mutex held.
func (uc *implUseCase) snapshot() settings.Settings {
	return settings.Settings{
		Profile:     uc.profile,
		ThemeID:     uc.themeID,
		WallpaperID: uc.wallpaperID,
		HasAPIKey:   uc.apiKey != "",
	}
}

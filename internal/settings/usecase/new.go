package usecase

import (
	"encoding/json"
	"fmt"
	"sync"

	"maxitask/internal/model"
	"maxitask/internal/storage"
	"maxitask/pkg/log"
)

const (
	kvProfile   = "user_profile"
	kvTheme     = "theme_id"
	kvWallpaper = "wallpaper_id"
	kvAPIKey    = "gemini_api_key"

	defaultThemeID     = "indigo"
	defaultWallpaperID = "aurora"
)

// implUseCase keeps settings in memory with write-through to the kv table.
type implUseCase struct {
	l  log.Logger
	db *storage.DB

	mu          sync.RWMutex
	profile     model.UserProfile
	themeID     string
	wallpaperID string
	apiKey      string
}

// New loads persisted settings, falling back to defaults on first run.
func New(l log.Logger, db *storage.DB) (*implUseCase, error) {
	uc := &implUseCase{
		l:           l,
		db:          db,
		themeID:     defaultThemeID,
		wallpaperID: defaultWallpaperID,
	}

	if raw, ok, err := db.GetKV(kvProfile); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &uc.profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
	}

	if v, ok, err := db.GetKV(kvTheme); err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	} else if ok && v != "" {
		uc.themeID = v
	}

	if v, ok, err := db.GetKV(kvWallpaper); err != nil {
		return nil, fmt.Errorf("failed to load wallpaper: %w", err)
	} else if ok && v != "" {
		uc.wallpaperID = v
	}

	if v, ok, err := db.GetKV(kvAPIKey); err != nil {
		return nil, fmt.Errorf("failed to load api key: %w", err)
	} else if ok {
		uc.apiKey = v
	}

	return uc, nil
}

func (uc *implUseCase) persistProfile() error {
	raw, err := json.Marshal(uc.profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := uc.db.SetKV(kvProfile, string(raw)); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

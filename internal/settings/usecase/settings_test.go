package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"maxitask/internal/settings"
	"maxitask/internal/settings/usecase"
	"maxitask/internal/storage"
)

// nopLogger keeps tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func openDB(t *testing.T) (*storage.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Before Onboarding", func(t *testing.T) {
		db, _ := openDB(t)
		uc, err := usecase.New(nopLogger{}, db)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		s, err := uc.Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if s.Profile.HasOnboarded {
			t.Fatal("fresh profile must not be onboarded")
		}
		if s.ThemeID == "" || s.WallpaperID == "" {
			t.Fatalf("defaults missing: %+v", s)
		}
		if s.HasAPIKey {
			t.Fatal("no credential should be stored initially")
		}
	})

	t.Run("Credential Presence Only Ever Exposed", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db)

		if err := uc.SetAPIKey(ctx, "sk-test-123"); err != nil {
			t.Fatalf("SetAPIKey: %v", err)
		}

		s, _ := uc.Get(ctx)
		if !s.HasAPIKey {
			t.Fatal("HasAPIKey should report stored credential")
		}
		if uc.APIKey(ctx) != "sk-test-123" {
			t.Fatal("internal accessor must return the raw key")
		}

		// clearing drops back to the no-credential state
		if err := uc.SetAPIKey(ctx, ""); err != nil {
			t.Fatalf("SetAPIKey clear: %v", err)
		}
		s, _ = uc.Get(ctx)
		if s.HasAPIKey || uc.APIKey(ctx) != "" {
			t.Fatal("credential not cleared")
		}
	})

	t.Run("Onboarding Sets Everything At Once", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db)

		s, err := uc.CompleteOnboarding(ctx, settings.OnboardingInput{
			Name:        "Max",
			Location:    "Berlin",
			ThemeID:     "rose",
			WallpaperID: "dunes",
		})
		if err != nil {
			t.Fatalf("CompleteOnboarding: %v", err)
		}
		if !s.Profile.HasOnboarded || s.Profile.Name != "Max" || s.ThemeID != "rose" || s.WallpaperID != "dunes" {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})

	t.Run("Onboarding Requires A Name", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db)

		if _, err := uc.CompleteOnboarding(ctx, settings.OnboardingInput{Name: "  "}); !errors.Is(err, settings.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("State Survives Reload", func(t *testing.T) {
		db, path := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db)

		if _, err := uc.CompleteOnboarding(ctx, settings.OnboardingInput{Name: "Max", ThemeID: "rose"}); err != nil {
			t.Fatalf("CompleteOnboarding: %v", err)
		}
		if err := uc.SetAPIKey(ctx, "sk-persisted"); err != nil {
			t.Fatalf("SetAPIKey: %v", err)
		}
		db.Close()

		db2, err := storage.Open(path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer db2.Close()

		uc2, err := usecase.New(nopLogger{}, db2)
		if err != nil {
			t.Fatalf("New after reload: %v", err)
		}
		s, _ := uc2.Get(ctx)
		if !s.Profile.HasOnboarded || s.Profile.Name != "Max" || s.ThemeID != "rose" {
			t.Fatalf("settings lost on reload: %+v", s)
		}
		if uc2.APIKey(ctx) != "sk-persisted" {
			t.Fatal("credential lost on reload")
		}
	})
}

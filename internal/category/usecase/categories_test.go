package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"maxitask/internal/category"
	"maxitask/internal/category/usecase"
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

var seed = []string{"Personal", "Work", "Hobbies", "Other"}

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

func TestCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh Database Is Seeded", func(t *testing.T) {
		db, _ := openDB(t)
		uc, err := usecase.New(nopLogger{}, db, seed)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		got, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 4 || got[0] != "Personal" {
			t.Fatalf("unexpected seed: %v", got)
		}
		active, err := uc.Active(ctx)
		if err != nil {
			t.Fatalf("Active: %v", err)
		}
		if active != "Personal" {
			t.Fatalf("expected first seed category active, got %q", active)
		}
	})

	t.Run("Add Appends And Activates", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db, seed)

		out, err := uc.Add(ctx, "  Travel  ")
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if out.Active != "Travel" {
			t.Fatalf("new category must become active, got %q", out.Active)
		}
		if out.Categories[len(out.Categories)-1] != "Travel" {
			t.Fatalf("new category must append, got %v", out.Categories)
		}
	})

	t.Run("Add Rejects Empty And Duplicate", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db, seed)

		if _, err := uc.Add(ctx, "   "); !errors.Is(err, category.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
		if _, err := uc.Add(ctx, "Work"); !errors.Is(err, category.ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("SetActive Requires Membership", func(t *testing.T) {
		db, _ := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db, seed)

		if err := uc.SetActive(ctx, "Work"); err != nil {
			t.Fatalf("SetActive: %v", err)
		}
		active, _ := uc.Active(ctx)
		if active != "Work" {
			t.Fatalf("expected Work active, got %q", active)
		}

		if err := uc.SetActive(ctx, "Nonsense"); !errors.Is(err, category.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("State Survives Reload", func(t *testing.T) {
		db, path := openDB(t)
		uc, _ := usecase.New(nopLogger{}, db, seed)

		if _, err := uc.Add(ctx, "Travel"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		db.Close()

		db2, err := storage.Open(path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer db2.Close()

		uc2, err := usecase.New(nopLogger{}, db2, seed)
		if err != nil {
			t.Fatalf("New after reload: %v", err)
		}
		got, _ := uc2.List(ctx)
		if len(got) != 5 || got[4] != "Travel" {
			t.Fatalf("categories lost on reload: %v", got)
		}
		active, _ := uc2.Active(ctx)
		if active != "Travel" {
			t.Fatalf("active category lost on reload: %q", active)
		}
	})
}

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"maxitask/internal/model"
	"maxitask/internal/note/repository"
	"maxitask/internal/note/repository/sqlite"
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

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()
	modified := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Prepend Keeps Newest First", func(t *testing.T) {
		db, _ := openDB(t)
		repo, err := sqlite.New(db, nopLogger{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		for _, id := range []string{"a", "b"} {
			n := model.Note{ID: id, Title: id, Category: "Personal", LastModified: modified}
			if err := repo.PrependNote(ctx, n); err != nil {
				t.Fatalf("PrependNote %s: %v", id, err)
			}
		}

		notes, err := repo.ListNotes(ctx)
		if err != nil {
			t.Fatalf("ListNotes: %v", err)
		}
		if len(notes) != 2 || notes[0].ID != "b" {
			t.Fatalf("unexpected order: %+v", notes)
		}
	})

	t.Run("Timestamps Survive Reopen", func(t *testing.T) {
		db, path := openDB(t)
		repo, _ := sqlite.New(db, nopLogger{})

		n := model.Note{
			ID:           "a",
			Title:        "Trip plan",
			Content:      "pack light",
			Category:     "Personal",
			LastModified: modified,
			Date:         "2024-06-14",
		}
		if err := repo.PrependNote(ctx, n); err != nil {
			t.Fatalf("PrependNote: %v", err)
		}
		db.Close()

		db2, err := storage.Open(path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer db2.Close()

		repo2, err := sqlite.New(db2, nopLogger{})
		if err != nil {
			t.Fatalf("New after reopen: %v", err)
		}
		got, err := repo2.GetNote(ctx, "a")
		if err != nil {
			t.Fatalf("GetNote: %v", err)
		}
		if !got.LastModified.Equal(modified) {
			t.Fatalf("timestamp changed on reopen: %v", got.LastModified)
		}
		if got.Content != "pack light" || got.Date != "2024-06-14" {
			t.Fatalf("unexpected note: %+v", got)
		}
	})

	t.Run("Update And Delete Round Trip", func(t *testing.T) {
		db, _ := openDB(t)
		repo, _ := sqlite.New(db, nopLogger{})

		n := model.Note{ID: "a", Title: "Ideas", Category: "Personal", LastModified: modified}
		if err := repo.PrependNote(ctx, n); err != nil {
			t.Fatalf("PrependNote: %v", err)
		}

		n.Content = "brainstorm output"
		n.LastModified = modified.Add(time.Hour)
		if err := repo.UpdateNote(ctx, n); err != nil {
			t.Fatalf("UpdateNote: %v", err)
		}

		got, _ := repo.GetNote(ctx, "a")
		if got.Content != "brainstorm output" || !got.LastModified.Equal(modified.Add(time.Hour)) {
			t.Fatalf("unexpected note: %+v", got)
		}

		if err := repo.DeleteNote(ctx, "a"); err != nil {
			t.Fatalf("DeleteNote: %v", err)
		}
		if _, err := repo.GetNote(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

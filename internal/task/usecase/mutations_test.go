package usecase_test

import (
	"context"
	"errors"
	"testing"

	"maxitask/internal/model"
	"maxitask/internal/task"
)

func seedRepo(tasks ...model.Task) *memRepo {
	return &memRepo{tasks: tasks}
}

func TestMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("List Filters By Category", func(t *testing.T) {
		repo := seedRepo(
			model.Task{ID: "1", Title: "standup", Category: "Work"},
			model.Task{ID: "2", Title: "groceries", Category: "Personal"},
		)
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		out, err := uc.List(ctx, task.ListInput{Category: "Work"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != "1" {
			t.Fatalf("unexpected filter result: %+v", out.Tasks)
		}
	})

	t.Run("Toggle Flips Completion", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		got, err := uc.Toggle(ctx, "1")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if !got.Completed {
			t.Fatal("expected completed=true after first toggle")
		}

		got, err = uc.Toggle(ctx, "1")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if got.Completed {
			t.Fatal("expected completed=false after second toggle")
		}
	})

	t.Run("Toggle Unknown ID", func(t *testing.T) {
		uc := newTaskUC(t, seedRepo(), &stubExtractor{}, stubCredentials{})

		if _, err := uc.Toggle(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Update Leaves Empty Fields Unchanged", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work", Time: "09:00"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		got, err := uc.Update(ctx, task.UpdateInput{ID: "1", Title: "daily standup"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Title != "daily standup" {
			t.Fatalf("title not updated: %q", got.Title)
		}
		if got.Category != "Work" || got.Time != "09:00" {
			t.Fatalf("untouched fields changed: %+v", got)
		}
	})

	t.Run("Update Rejects Unknown Category", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		if _, err := uc.Update(ctx, task.UpdateInput{ID: "1", Category: "Errands"}); !errors.Is(err, task.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("Update Rejects Bad Time", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		if _, err := uc.Update(ctx, task.UpdateInput{ID: "1", Time: "25:99"}); !errors.Is(err, task.ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime, got %v", err)
		}
	})

	t.Run("AssignDate Sets And Clears", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		got, err := uc.AssignDate(ctx, "1", "2024-06-15")
		if err != nil {
			t.Fatalf("AssignDate: %v", err)
		}
		if got.Date != "2024-06-15" {
			t.Fatalf("date not set: %q", got.Date)
		}

		got, err = uc.AssignDate(ctx, "1", "")
		if err != nil {
			t.Fatalf("AssignDate clear: %v", err)
		}
		if got.Date != "" {
			t.Fatalf("date not cleared: %q", got.Date)
		}
	})

	t.Run("AssignDate Rejects Bad Date", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		if _, err := uc.AssignDate(ctx, "1", "June 15"); !errors.Is(err, task.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Delete Removes Task", func(t *testing.T) {
		repo := seedRepo(model.Task{ID: "1", Title: "standup", Category: "Work"})
		uc := newTaskUC(t, repo, &stubExtractor{}, stubCredentials{})

		if err := uc.Delete(ctx, "1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := uc.Delete(ctx, "1"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound on double delete, got %v", err)
		}
	})
}

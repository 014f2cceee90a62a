package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maxitask/internal/extraction"
	"maxitask/internal/task"
	"maxitask/internal/task/usecase"
	"maxitask/pkg/datemath"
)

func newTaskUC(t *testing.T, repo *memRepo, ext *stubExtractor, creds stubCredentials) task.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return usecase.New(nopLogger{}, repo, ext, defaultCategories(), creds, parser)
}

func TestQuickAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Input Rejected", func(t *testing.T) {
		uc := newTaskUC(t, &memRepo{}, &stubExtractor{}, stubCredentials{})

		if _, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "   "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Merge Assigns Fresh ID And Head Position", func(t *testing.T) {
		repo := &memRepo{}
		ext := &stubExtractor{singleResult: extraction.SingleTaskResult{
			Title: "Call mom", Category: "Personal", Time: "17:00", Date: "2024-06-11",
		}}
		uc := newTaskUC(t, repo, ext, stubCredentials{key: "k"})

		first, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "call mom tomorrow at 5pm"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if first.Task.ID == "" {
			t.Fatal("expected a generated id")
		}
		if first.Task.Time != "17:00" || first.Task.Date != "2024-06-11" {
			t.Fatalf("unexpected schedule: %+v", first.Task)
		}

		second, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "another"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if second.Task.ID == first.Task.ID {
			t.Fatal("ids must be unique per insert")
		}

		list, err := uc.List(ctx, task.ListInput{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list.Tasks) != 2 || list.Tasks[0].ID != second.Task.ID {
			t.Fatalf("newest task must be at the head, got %+v", list.Tasks)
		}
	})

	t.Run("Hallucinated Category Is Replaced By Active", func(t *testing.T) {
		repo := &memRepo{}
		ext := &stubExtractor{singleResult: extraction.SingleTaskResult{
			Title: "Buy paint", Category: "Errands",
		}}
		uc := newTaskUC(t, repo, ext, stubCredentials{key: "k"})

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "buy paint"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if out.Task.Category != "Personal" {
			t.Fatalf("expected active category substitution, got %q", out.Task.Category)
		}
	})

	t.Run("No Credential Resolves Trailing Date Locally", func(t *testing.T) {
		uc := newTaskUC(t, &memRepo{}, &stubExtractor{}, stubCredentials{})

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "call mom tomorrow"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		want := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		if out.Task.Date != want {
			t.Fatalf("date = %q, want %q", out.Task.Date, want)
		}
		if out.Task.Title != "call mom" {
			t.Fatalf("phrase not stripped from title: %q", out.Task.Title)
		}

		out, err = uc.QuickAdd(ctx, task.QuickAddInput{Text: "pay rent in 2 weeks"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		want = time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
		if out.Task.Date != want || out.Task.Title != "pay rent" {
			t.Fatalf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("No Credential Leaves Plain Input Alone", func(t *testing.T) {
		uc := newTaskUC(t, &memRepo{}, &stubExtractor{}, stubCredentials{})

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "water plants"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if out.Task.Title != "water plants" || out.Task.Date != "" {
			t.Fatalf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("Credential Defers Date Resolution To Extraction", func(t *testing.T) {
		ext := &stubExtractor{singleResult: extraction.SingleTaskResult{
			Title: "finish slides tomorrow", Category: "Work",
		}}
		uc := newTaskUC(t, &memRepo{}, ext, stubCredentials{key: "k"})

		out, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "finish slides tomorrow"})
		if err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if out.Task.Title != "finish slides tomorrow" || out.Task.Date != "" {
			t.Fatalf("local resolution must not second-guess the model: %+v", out.Task)
		}
	})

	t.Run("Extraction Context Carries Credential And Date", func(t *testing.T) {
		ext := &stubExtractor{}
		uc := newTaskUC(t, &memRepo{}, ext, stubCredentials{key: "secret"})

		if _, err := uc.QuickAdd(ctx, task.QuickAddInput{Text: "water plants"}); err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
		if ext.lastContext.APIKey != "secret" {
			t.Fatalf("credential not passed through: %+v", ext.lastContext)
		}
		if ext.lastContext.CurrentDate == "" {
			t.Fatal("current date must be set")
		}
		if ext.lastContext.ActiveCategory != "Personal" {
			t.Fatalf("unexpected active category %q", ext.lastContext.ActiveCategory)
		}
	})
}

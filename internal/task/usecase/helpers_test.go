package usecase_test

import (
	"context"

	"maxitask/internal/extraction"
	"maxitask/internal/model"
	"maxitask/internal/task/repository"
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

// memRepo is an in-memory task repository, head-first like the real one.
type memRepo struct {
	tasks []model.Task
}

func (r *memRepo) PrependTask(ctx context.Context, t model.Task) error {
	r.tasks = append([]model.Task{t}, r.tasks...)
	return nil
}

func (r *memRepo) PrependTasks(ctx context.Context, ts []model.Task) error {
	r.tasks = append(append([]model.Task{}, ts...), r.tasks...)
	return nil
}

func (r *memRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *memRepo) UpdateTask(ctx context.Context, t model.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memRepo) DeleteTask(ctx context.Context, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// stubExtractor returns canned extraction results and records calls.
type stubExtractor struct {
	singleResult extraction.SingleTaskResult
	lastContext  extraction.Context
	calls        int
}

func (s *stubExtractor) ParseSingleTask(ctx context.Context, utterance string, ec extraction.Context) extraction.SingleTaskResult {
	s.calls++
	s.lastContext = ec
	if s.singleResult.Title == "" {
		return extraction.SingleTaskResult{Title: utterance, Category: ec.ActiveCategory}
	}
	return s.singleResult
}

func (s *stubExtractor) ProcessAssistant(ctx context.Context, utterance string, ec extraction.Context) extraction.AssistantResult {
	return extraction.AssistantResult{Message: "ok"}
}

// stubCategories is a fixed category set.
type stubCategories struct {
	list   []string
	active string
}

func (s stubCategories) List(ctx context.Context) ([]string, error) { return s.list, nil }
func (s stubCategories) Active(ctx context.Context) (string, error) { return s.active, nil }

// stubCredentials returns a fixed credential.
type stubCredentials struct {
	key string
}

func (s stubCredentials) APIKey(ctx context.Context) string { return s.key }

func defaultCategories() stubCategories {
	return stubCategories{
		list:   []string{"Personal", "Work", "Hobbies", "Other"},
		active: "Personal",
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"maxitask/internal/extraction"
	"maxitask/internal/model"
	"maxitask/internal/task"
)

// QuickAdd is the single-task fast path: one utterance becomes at most one
// task. The extraction result is merged defensively — fresh id, category
// re-check against the live set — and inserted at the head of the list.
func (uc *implUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.QuickAddOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.QuickAddOutput{}, task.ErrEmptyInput
	}

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return task.QuickAddOutput{}, fmt.Errorf("failed to read categories: %w", err)
	}
	active, err := uc.categories.Active(ctx)
	if err != nil {
		return task.QuickAddOutput{}, fmt.Errorf("failed to read active category: %w", err)
	}

	key := uc.credentials.APIKey(ctx)
	parsed := uc.extractor.ParseSingleTask(ctx, input.Text, extraction.Context{
		ActiveCategory: active,
		Categories:     categories,
		CurrentDate:    uc.dateMath.Today(),
		APIKey:         key,
	})

	// Without a credential the extractor hands the utterance back untouched;
	// a trailing "tomorrow" or "next monday" can still be resolved locally.
	title, date := parsed.Title, parsed.Date
	if key == "" {
		title, date = uc.resolveLocalDate(title)
	}

	t := model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  resolveCategory(parsed.Category, categories, active),
		Completed: false,
		Time:      parsed.Time,
		Date:      date,
	}

	if err := uc.repo.PrependTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd PrependTask: %v", err)
		return task.QuickAddOutput{}, err
	}

	uc.l.Infof(ctx, "uc.QuickAdd: created task %q category=%s", t.Title, t.Category)
	return task.QuickAddOutput{Task: t}, nil
}

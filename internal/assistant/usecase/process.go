package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"maxitask/internal/assistant"
	"maxitask/internal/extraction"
	"maxitask/internal/model"
)

// Process runs one conversational turn: extract candidates, then merge them
// into the app state. Merging re-validates every candidate category against
// the live set; model output is never trusted to stay inside the enum.
func (uc *implUseCase) Process(ctx context.Context, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ProcessOutput{}, assistant.ErrEmptyInput
	}

	if !uc.processing.CompareAndSwap(false, true) {
		return assistant.ProcessOutput{}, assistant.ErrBusy
	}
	defer uc.processing.Store(false)

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return assistant.ProcessOutput{}, err
	}
	active, err := uc.categories.Active(ctx)
	if err != nil {
		return assistant.ProcessOutput{}, err
	}

	result := uc.extractor.ProcessAssistant(ctx, text, extraction.Context{
		ActiveCategory: active,
		Categories:     categories,
		CurrentDate:    uc.dateMath.Today(),
		APIKey:         uc.credentials.APIKey(ctx),
	})

	out := assistant.ProcessOutput{Message: result.Message}

	if len(result.NewTasks) > 0 {
		tasks := make([]model.Task, 0, len(result.NewTasks))
		for _, cand := range result.NewTasks {
			tasks = append(tasks, model.Task{
				ID:       uuid.NewString(),
				Title:    cand.Title,
				Category: resolveCategory(cand.Category, categories, active),
				Time:     cand.Time,
				Date:     cand.Date,
			})
		}
		if err := uc.tasks.PrependTasks(ctx, tasks); err != nil {
			uc.l.Errorf(ctx, "uc.Process PrependTasks: %v", err)
			return assistant.ProcessOutput{}, err
		}
		out.CreatedTasks = tasks
	}

	if result.NewNote != nil {
		n := model.Note{
			ID:           uuid.NewString(),
			Title:        result.NewNote.Title,
			Content:      result.NewNote.Content,
			Category:     resolveCategory(result.NewNote.Category, categories, active),
			LastModified: time.Now(),
			Date:         result.NewNote.Date,
		}
		if err := uc.notes.PrependNote(ctx, n); err != nil {
			uc.l.Errorf(ctx, "uc.Process PrependNote: %v", err)
			return assistant.ProcessOutput{}, err
		}
		out.CreatedNote = &n
	}

	uc.l.Infof(ctx, "assistant turn: %d tasks, note=%t", len(out.CreatedTasks), out.CreatedNote != nil)
	return out, nil
}

func resolveCategory(candidate string, categories []string, active string) string {
	for _, c := range categories {
		if c == candidate {
			return candidate
		}
	}
	return active
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"maxitask/internal/model"
	"maxitask/internal/task"
	"maxitask/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	all, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return task.ListOutput{}, err
	}

	if input.Category == "" {
		return task.ListOutput{Tasks: all}, nil
	}

	filtered := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.Category == input.Category {
			filtered = append(filtered, t)
		}
	}
	return task.ListOutput{Tasks: filtered}, nil
}

func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}

	t.Completed = !t.Completed
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		t.Title = title
	}
	if input.Category != "" {
		categories, catErr := uc.categories.List(ctx)
		if catErr != nil {
			return model.Task{}, catErr
		}
		if !contains(categories, input.Category) {
			return model.Task{}, task.ErrInvalidCategory
		}
		t.Category = input.Category
	}
	if input.Time != "" {
		if !validTime(input.Time) {
			return model.Task{}, task.ErrInvalidTime
		}
		t.Time = input.Time
	}
	if input.Date != "" {
		if !validDate(input.Date) {
			return model.Task{}, task.ErrInvalidDate
		}
		t.Date = input.Date
	}

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

// AssignDate sets or clears the task's calendar assignment.
func (uc *implUseCase) AssignDate(ctx context.Context, id, date string) (model.Task, error) {
	if date != "" && !validDate(date) {
		return model.Task{}, task.ErrInvalidDate
	}

	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}

	t.Date = date
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.AssignDate UpdateTask: %v", err)
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

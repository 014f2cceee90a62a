package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"maxitask/internal/model"
	"maxitask/internal/note"
	"maxitask/internal/note/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input note.CreateInput) (note.CreateOutput, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return note.CreateOutput{}, err
	}
	active, err := uc.categories.Active(ctx)
	if err != nil {
		return note.CreateOutput{}, err
	}

	category := input.Category
	if category == "" || !contains(categories, category) {
		category = active
	}

	if input.Date != "" && !validDate(input.Date) {
		return note.CreateOutput{}, note.ErrInvalidDate
	}

	n := model.Note{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Content:      input.Content,
		Category:     category,
		LastModified: time.Now(),
		Date:         input.Date,
	}

	if err := uc.repo.PrependNote(ctx, n); err != nil {
		uc.l.Errorf(ctx, "uc.Create PrependNote: %v", err)
		return note.CreateOutput{}, err
	}

	return note.CreateOutput{Note: n}, nil
}

func (uc *implUseCase) List(ctx context.Context, input note.ListInput) (note.ListOutput, error) {
	all, err := uc.repo.ListNotes(ctx)
	if err != nil {
		return note.ListOutput{}, err
	}

	if input.Category == "" {
		return note.ListOutput{Notes: all}, nil
	}

	filtered := make([]model.Note, 0, len(all))
	for _, n := range all {
		if n.Category == input.Category {
			filtered = append(filtered, n)
		}
	}
	return note.ListOutput{Notes: filtered}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Note, error) {
	n, err := uc.repo.GetNote(ctx, id)
	if err != nil {
		return model.Note{}, mapRepoErr(err)
	}
	return n, nil
}

// Update replaces the note's content and bumps LastModified.
func (uc *implUseCase) Update(ctx context.Context, input note.UpdateInput) (model.Note, error) {
	n, err := uc.repo.GetNote(ctx, input.ID)
	if err != nil {
		return model.Note{}, mapRepoErr(err)
	}

	if input.Category != "" {
		categories, catErr := uc.categories.List(ctx)
		if catErr != nil {
			return model.Note{}, catErr
		}
		if !contains(categories, input.Category) {
			return model.Note{}, note.ErrInvalidCategory
		}
		n.Category = input.Category
	}
	if input.Date != "" && !validDate(input.Date) {
		return model.Note{}, note.ErrInvalidDate
	}

	n.Title = input.Title
	n.Content = input.Content
	if input.Date != "" {
		n.Date = input.Date
	}
	n.LastModified = time.Now()

	if err := uc.repo.UpdateNote(ctx, n); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return model.Note{}, mapRepoErr(err)
	}
	return n, nil
}

// AssignDate sets or clears the note's calendar assignment. Content and
// LastModified stay untouched: this is scheduling metadata, not an edit.
func (uc *implUseCase) AssignDate(ctx context.Context, id, date string) (model.Note, error) {
	if date != "" && !validDate(date) {
		return model.Note{}, note.ErrInvalidDate
	}

	n, err := uc.repo.GetNote(ctx, id)
	if err != nil {
		return model.Note{}, mapRepoErr(err)
	}

	n.Date = date
	if err := uc.repo.UpdateNote(ctx, n); err != nil {
		uc.l.Errorf(ctx, "uc.AssignDate UpdateNote: %v", err)
		return model.Note{}, mapRepoErr(err)
	}
	return n, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteNote(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return note.ErrNoteNotFound
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

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

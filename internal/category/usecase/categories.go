package usecase

import (
	"context"
	"strings"

	"maxitask/internal/category"
)

func (uc *implUseCase) List(ctx context.Context) ([]string, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]string, len(uc.categories))
	copy(out, uc.categories)
	return out, nil
}

func (uc *implUseCase) Active(ctx context.Context) (string, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.active, nil
}

// Add appends a new category and makes it the active one.
func (uc *implUseCase) Add(ctx context.Context, name string) (category.AddOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return category.AddOutput{}, category.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.index(name) >= 0 {
		return category.AddOutput{}, category.ErrDuplicateName
	}

	uc.categories = append(uc.categories, name)
	if err := uc.persistCategories(); err != nil {
		uc.categories = uc.categories[:len(uc.categories)-1]
		uc.l.Errorf(ctx, "uc.Add persist: %v", err)
		return category.AddOutput{}, err
	}

	prevActive := uc.active
	uc.active = name
	if err := uc.db.SetKV(kvActive, name); err != nil {
		uc.active = prevActive
		uc.l.Errorf(ctx, "uc.Add persist active: %v", err)
		return category.AddOutput{}, err
	}

	out := category.AddOutput{
		Categories: make([]string, len(uc.categories)),
		Active:     uc.active,
	}
	copy(out.Categories, uc.categories)
	return out, nil
}

func (uc *implUseCase) SetActive(ctx context.Context, name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.index(name) < 0 {
		return category.ErrCategoryNotFound
	}

	if err := uc.db.SetKV(kvActive, name); err != nil {
		uc.l.Errorf(ctx, "uc.SetActive persist: %v", err)
		return err
	}
	uc.active = name
	return nil
}

package usecase

import (
	"encoding/json"
	"fmt"
	"sync"

	"maxitask/internal/storage"
	"maxitask/pkg/log"
)

const (
	kvCategories = "categories"
	kvActive     = "active_category"
)

// implUseCase holds the category set in memory and mirrors every change to
// the kv table, same write-through scheme as the repositories.
type implUseCase struct {
	l  log.Logger
	db *storage.DB

	mu         sync.RWMutex
	categories []string
	active     string
}

// New loads the persisted category set, seeding it from seedCategories on
// first run.
func New(l log.Logger, db *storage.DB, seedCategories []string) (*implUseCase, error) {
	uc := &implUseCase{l: l, db: db}

	raw, ok, err := db.GetKV(kvCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &uc.categories); err != nil {
			return nil, fmt.Errorf("failed to decode categories: %w", err)
		}
	}
	if len(uc.categories) == 0 {
		uc.categories = append([]string{}, seedCategories...)
		if err := uc.persistCategories(); err != nil {
			return nil, err
		}
	}

	active, ok, err := db.GetKV(kvActive)
	if err != nil {
		return nil, fmt.Errorf("failed to load active category: %w", err)
	}
	if ok && uc.index(active) >= 0 {
		uc.active = active
	} else {
		uc.active = uc.categories[0]
		if err := db.SetKV(kvActive, uc.active); err != nil {
			return nil, fmt.Errorf("failed to persist active category: %w", err)
		}
	}

	return uc, nil
}

func (uc *implUseCase) persistCategories() error {
	raw, err := json.Marshal(uc.categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := uc.db.SetKV(kvCategories, string(raw)); err != nil {
		return fmt.Errorf("failed to persist categories: %w", err)
	}
	return nil
}

func (uc *implUseCase) index(name string) int {
	for i, c := range uc.categories {
		if c == name {
			return i
		}
	}
	return -1
}

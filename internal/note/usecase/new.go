package usecase

import (
	"context"

	"maxitask/internal/note/repository"
	"maxitask/pkg/log"
)

// CategorySource is the read-only view of the live category set.
type CategorySource interface {
	List(ctx context.Context) ([]string, error)
	Active(ctx context.Context) (string, error)
}

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	categories CategorySource
}

// New creates a new note UseCase instance.
func New(l log.Logger, repo repository.Repository, categories CategorySource) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		categories: categories,
	}
}

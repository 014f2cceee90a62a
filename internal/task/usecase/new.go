package usecase

import (
	"context"

	"maxitask/internal/extraction"
	"maxitask/internal/task/repository"
	"maxitask/pkg/datemath"
	"maxitask/pkg/log"
)

// CategorySource is the read-only view of the live category set.
type CategorySource interface {
	List(ctx context.Context) ([]string, error)
	Active(ctx context.Context) (string, error)
}

// CredentialSource supplies the stored model credential; blank means none.
type CredentialSource interface {
	APIKey(ctx context.Context) string
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	extractor   extraction.UseCase
	categories  CategorySource
	credentials CredentialSource
	dateMath    *datemath.Parser
}

// New creates a new task UseCase instance.
func New(
	l log.Logger,
	repo repository.Repository,
	extractor extraction.UseCase,
	categories CategorySource,
	credentials CredentialSource,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		extractor:   extractor,
		categories:  categories,
		credentials: credentials,
		dateMath:    dateMath,
	}
}

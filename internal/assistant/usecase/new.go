package usecase

import (
	"context"
	"sync/atomic"

	"maxitask/internal/extraction"
	noterepo "maxitask/internal/note/repository"
	taskrepo "maxitask/internal/task/repository"
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

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l           log.Logger
	extractor   extraction.UseCase
	tasks       taskrepo.Repository
	notes       noterepo.Repository
	categories  CategorySource
	credentials CredentialSource
	dateMath    *datemath.Parser

	processing atomic.Bool
}

// New creates a new assistant UseCase instance.
func New(
	l log.Logger,
	extractor extraction.UseCase,
	tasks taskrepo.Repository,
	notes noterepo.Repository,
	categories CategorySource,
	credentials CredentialSource,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:           l,
		extractor:   extractor,
		tasks:       tasks,
		notes:       notes,
		categories:  categories,
		credentials: credentials,
		dateMath:    dateMath,
	}
}

package repository

import (
	"context"
	"errors"

	"maxitask/internal/model"
)

var ErrNotFound = errors.New("note not found in repository")

// Repository owns the ordered note collection, head-first, mirrored to
// persistent storage like the task repository.
type Repository interface {
	PrependNote(ctx context.Context, n model.Note) error
	ListNotes(ctx context.Context) ([]model.Note, error)
	GetNote(ctx context.Context, id string) (model.Note, error)
	UpdateNote(ctx context.Context, n model.Note) error
	DeleteNote(ctx context.Context, id string) error
}

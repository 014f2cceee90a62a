package note

import (
	"context"

	"maxitask/internal/model"
)

// UseCase covers the notes grid.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Note, error)
	Update(ctx context.Context, input UpdateInput) (model.Note, error)
	AssignDate(ctx context.Context, id, date string) (model.Note, error)
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"
	"errors"

	"maxitask/internal/model"
)

var ErrNotFound = errors.New("task not found in repository")

// Repository owns the ordered task collection: in-memory state mirrored
// synchronously to persistent storage. Head-first ordering (most recent
// first) is part of the contract and survives a reload.
type Repository interface {
	// PrependTask inserts one task at the head of the collection.
	PrependTask(ctx context.Context, t model.Task) error

	// PrependTasks inserts a batch at the head as a block, preserving the
	// batch's internal order.
	PrependTasks(ctx context.Context, ts []model.Task) error

	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error
}

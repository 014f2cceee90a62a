package task

import (
	"context"

	"maxitask/internal/model"
)

// UseCase covers the task list: the quick-add consumer plus list mutations
// and the timeline projection.
type UseCase interface {
	// QuickAdd turns one utterance into exactly one task via the extraction
	// service and inserts it at the head of the list.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Toggle(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)

	// AssignDate sets the task's calendar date; an empty date clears it.
	AssignDate(ctx context.Context, id, date string) (model.Task, error)

	Delete(ctx context.Context, id string) error

	// Timeline projects uncompleted timed tasks into one-hour display events.
	Timeline(ctx context.Context) (TimelineOutput, error)
}

package task

import "maxitask/internal/model"

// --- UseCase Inputs ---

// QuickAddInput is the single-utterance fast path input.
type QuickAddInput struct {
	Text string
}

type ListInput struct {
	Category string // empty = all categories
}

// UpdateInput is a partial update: empty fields are left unchanged.
// Time and Date are cleared through AssignDate / ClearTime semantics instead.
type UpdateInput struct {
	ID       string
	Title    string
	Category string
	Time     string
	Date     string
}

// --- UseCase Outputs ---

type QuickAddOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

type TimelineOutput struct {
	Events []model.TimelineEvent
}

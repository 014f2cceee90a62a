package calendar

import "errors"

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrTaskNotFound = errors.New("task not found")
	ErrNotScheduled = errors.New("task has no date assigned")
)

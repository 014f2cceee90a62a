package task

import "errors"

var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidCategory = errors.New("category is not in the category set")
	ErrInvalidTime     = errors.New("time must be HH:MM (24-hour)")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

package note

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidCategory = errors.New("category is not in the category set")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

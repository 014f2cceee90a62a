package note

import "maxitask/internal/model"

// CreateInput creates a note. All fields may be empty: the notes grid starts
// notes blank, and an empty category defaults to the active one.
type CreateInput struct {
	Title    string
	Content  string
	Category string
	Date     string
}

// UpdateInput is a full-content update; LastModified is bumped on every call.
type UpdateInput struct {
	ID       string
	Title    string
	Content  string
	Category string
	Date     string
}

type ListInput struct {
	Category string // empty = all categories
}

type CreateOutput struct {
	Note model.Note
}

type ListOutput struct {
	Notes []model.Note
}

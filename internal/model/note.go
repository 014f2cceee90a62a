package model

import "time"

// Note is a free-text note shown in the notes grid.
// LastModified is bumped on every edit.
type Note struct {
	ID           string
	Title        string
	Content      string
	Category     string
	LastModified time.Time
	Date         string // optional YYYY-MM-DD calendar association
}

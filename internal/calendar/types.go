package calendar

import "maxitask/internal/model"

// Day is one cell of the 6x7 month grid.
type Day struct {
	Date    string // YYYY-MM-DD
	InMonth bool   // false for padding days from adjacent months
	Today   bool
	Tasks   []model.Task
	Notes   []model.Note
}

type MonthOutput struct {
	Year  int
	Month int // 1..12
	Days  []Day
}

// ExportOutput is the result of pushing a task to Google Calendar. Link is
// empty when no calendar integration is configured.
type ExportOutput struct {
	Task    model.Task
	EventID string
	Link    string
}

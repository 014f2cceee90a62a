package model

// Task is a single to-do item.
//
// Time and Date are optional display attributes, not parsed further by the
// domain: Time is a 24-hour "HH:MM" clock string, Date a "YYYY-MM-DD"
// calendar date. Association with a calendar day is by Date value; any number
// of tasks may share a date.
type Task struct {
	ID        string
	Title     string
	Category  string
	Completed bool
	Time      string
	Date      string
}

package model

// TimelineEvent is the timeline projection of a timed task.
type TimelineEvent struct {
	ID        string
	Title     string
	StartTime string // "06:00"
	EndTime   string // "07:30"
	Type      string // "work" | "personal"
}

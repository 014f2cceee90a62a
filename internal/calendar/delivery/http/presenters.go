package http

import (
	"time"

	"maxitask/internal/calendar"
	"maxitask/internal/model"
)

// --- Response DTOs ---

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
	Date      string `json:"date,omitempty"`
}

type noteResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
	Date         string    `json:"date,omitempty"`
}

type dayResp struct {
	Date    string     `json:"date"`
	InMonth bool       `json:"in_month"`
	Today   bool       `json:"today"`
	Tasks   []taskResp `json:"tasks,omitempty"`
	Notes   []noteResp `json:"notes,omitempty"`
}

type monthResp struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []dayResp `json:"days"`
}

func (h *handler) newMonthResp(out calendar.MonthOutput) monthResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayResp{
			Date:    d.Date,
			InMonth: d.InMonth,
			Today:   d.Today,
			Tasks:   newTaskResps(d.Tasks),
			Notes:   newNoteResps(d.Notes),
		}
	}
	return monthResp{Year: out.Year, Month: out.Month, Days: days}
}

type exportResp struct {
	Task    taskResp `json:"task"`
	EventID string   `json:"event_id,omitempty"`
	Link    string   `json:"link,omitempty"`
}

func (h *handler) newExportResp(out calendar.ExportOutput) exportResp {
	return exportResp{
		Task:    newTaskResp(out.Task),
		EventID: out.EventID,
		Link:    out.Link,
	}
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Category:  t.Category,
		Completed: t.Completed,
		Time:      t.Time,
		Date:      t.Date,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

func newNoteResps(notes []model.Note) []noteResp {
	if len(notes) == 0 {
		return nil
	}
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = noteResp{
			ID:           n.ID,
			Title:        n.Title,
			Category:     n.Category,
			LastModified: n.LastModified,
			Date:         n.Date,
		}
	}
	return out
}

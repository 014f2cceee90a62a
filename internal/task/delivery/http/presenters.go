package http

import (
	"maxitask/internal/model"
	"maxitask/internal/task"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text string `json:"text" binding:"required"`
}

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{Text: r.Text}
}

type listReq struct {
	Category string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Category: r.Category}
}

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Title    string `json:"title"    binding:"omitempty,max=500"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Time     string `json:"time"     binding:"omitempty"`
	Date     string `json:"date"     binding:"omitempty"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Time:     r.Time,
		Date:     r.Date,
	}
}

type assignDateReq struct {
	ID   string `json:"-"`
	Date string `json:"date"` // empty clears the date
}

// --- Response DTOs ---

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
	Date      string `json:"date,omitempty"`
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

type quickAddResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	return quickAddResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type timelineEventResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      string `json:"type"`
}

type timelineResp struct {
	Events []timelineEventResp `json:"events"`
}

func (h *handler) newTimelineResp(out task.TimelineOutput) timelineResp {
	events := make([]timelineEventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = timelineEventResp{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Type:      e.Type,
		}
	}
	return timelineResp{Events: events}
}

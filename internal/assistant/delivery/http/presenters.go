package http

import (
	"time"

	"maxitask/internal/assistant"
	"maxitask/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text" binding:"required"`
}

func (r processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{Text: r.Text}
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

type noteResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
	Date         string    `json:"date,omitempty"`
}

type processResp struct {
	Message      string     `json:"message"`
	CreatedTasks []taskResp `json:"created_tasks"`
	CreatedNote  *noteResp  `json:"created_note,omitempty"`
}

func (h *handler) newProcessResp(out assistant.ProcessOutput) processResp {
	resp := processResp{
		Message:      out.Message,
		CreatedTasks: make([]taskResp, len(out.CreatedTasks)),
	}
	for i, t := range out.CreatedTasks {
		resp.CreatedTasks[i] = newTaskResp(t)
	}
	if out.CreatedNote != nil {
		n := newNoteResp(*out.CreatedNote)
		resp.CreatedNote = &n
	}
	return resp
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

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		Category:     n.Category,
		LastModified: n.LastModified,
		Date:         n.Date,
	}
}

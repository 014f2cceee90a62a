package http

import (
	"time"

	"maxitask/internal/model"
	"maxitask/internal/note"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    binding:"omitempty,max=500"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Date     string `json:"date"     binding:"omitempty"`
}

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Date:     r.Date,
	}
}

type listReq struct {
	Category string `form:"category"`
}

func (r listReq) toInput() note.ListInput {
	return note.ListInput{Category: r.Category}
}

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Title    string `json:"title"    binding:"omitempty,max=500"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Date     string `json:"date"     binding:"omitempty"`
}

func (r updateReq) toInput() note.UpdateInput {
	return note.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Date:     r.Date,
	}
}

type assignDateReq struct {
	ID   string `json:"-"`
	Date string `json:"date"` // empty clears the date
}

// --- Response DTOs ---

type noteResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
	Date         string    `json:"date,omitempty"`
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

type createResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newCreateResp(out note.CreateOutput) createResp {
	return createResp{Note: newNoteResp(out.Note)}
}

type listResp struct {
	Notes []noteResp `json:"notes"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes}
}

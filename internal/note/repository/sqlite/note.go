package sqlite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"maxitask/internal/model"
	"maxitask/internal/note/repository"
	"maxitask/internal/storage"
	"maxitask/pkg/log"
)

// noteRepo mirrors the note collection between memory and sqlite, with the
// same head-first position scheme as the task repository.
type noteRepo struct {
	l  log.Logger
	db *storage.DB

	mu      sync.RWMutex
	notes   []model.Note // head-first
	headPos int64
}

// New creates the note repository and loads existing state from storage.
func New(db *storage.DB, l log.Logger) (*noteRepo, error) {
	r := &noteRepo{l: l, db: db}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	return r, nil
}

func (r *noteRepo) load() error {
	rows, err := r.db.SQL().Query(
		`SELECT id, title, content, category, last_modified, date, position FROM notes ORDER BY position ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	r.notes = nil
	r.headPos = 0

	first := true
	for rows.Next() {
		var n model.Note
		var lastModified string
		var pos int64
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &lastModified, &n.Date, &pos); err != nil {
			return err
		}
		if ts, parseErr := time.Parse(time.RFC3339, lastModified); parseErr == nil {
			n.LastModified = ts
		}
		if first {
			r.headPos = pos
			first = false
		}
		r.notes = append(r.notes, n)
	}
	return rows.Err()
}

func (r *noteRepo) PrependNote(ctx context.Context, n model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.headPos - 1
	if _, err := r.db.SQL().ExecContext(ctx,
		`INSERT INTO notes (id, title, content, category, last_modified, date, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.Category, n.LastModified.Format(time.RFC3339), n.Date, pos,
	); err != nil {
		return err
	}

	r.headPos = pos
	r.notes = append([]model.Note{n}, r.notes...)
	return nil
}

func (r *noteRepo) ListNotes(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Note, len(r.notes))
	copy(out, r.notes)
	return out, nil
}

func (r *noteRepo) GetNote(ctx context.Context, id string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return model.Note{}, repository.ErrNotFound
}

func (r *noteRepo) UpdateNote(ctx context.Context, n model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.notes {
		if r.notes[i].ID == n.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	if _, err := r.db.SQL().ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, category = ?, last_modified = ?, date = ? WHERE id = ?`,
		n.Title, n.Content, n.Category, n.LastModified.Format(time.RFC3339), n.Date, n.ID,
	); err != nil {
		return err
	}

	r.notes[idx] = n
	return nil
}

func (r *noteRepo) DeleteNote(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.notes {
		if r.notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	if _, err := r.db.SQL().ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return err
	}

	r.notes = append(r.notes[:idx], r.notes[idx+1:]...)
	return nil
}

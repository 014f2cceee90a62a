package sqlite

import (
	"context"
	"fmt"
	"sync"

	"maxitask/internal/model"
	"maxitask/internal/task/repository"
	"maxitask/internal/storage"
	"maxitask/pkg/log"
)

// taskRepo holds the task list in memory and mirrors every mutation to the
// sqlite database. Rows are ordered by a position column; the head of the
// list is the smallest position, so prepends decrement from the current head.
type taskRepo struct {
	l  log.Logger
	db *storage.DB

	mu      sync.RWMutex
	tasks   []model.Task // head-first
	headPos int64        // position of the current head row
}

// New creates the task repository and loads existing state from storage.
func New(db *storage.DB, l log.Logger) (*taskRepo, error) {
	r := &taskRepo{l: l, db: db}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return r, nil
}

func (r *taskRepo) load() error {
	rows, err := r.db.SQL().Query(
		`SELECT id, title, category, completed, time, date, position FROM tasks ORDER BY position ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	r.tasks = nil
	r.headPos = 0

	first := true
	for rows.Next() {
		var t model.Task
		var completed int
		var pos int64
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &completed, &t.Time, &t.Date, &pos); err != nil {
			return err
		}
		t.Completed = completed != 0
		if first {
			r.headPos = pos
			first = false
		}
		r.tasks = append(r.tasks, t)
	}
	return rows.Err()
}

func (r *taskRepo) PrependTask(ctx context.Context, t model.Task) error {
	return r.PrependTasks(ctx, []model.Task{t})
}

func (r *taskRepo) PrependTasks(ctx context.Context, ts []model.Task) error {
	if len(ts) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base := r.headPos - int64(len(ts))

	tx, err := r.db.SQL().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for i, t := range ts {
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, title, category, completed, time, date, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Category, boolToInt(t.Completed), t.Time, t.Date, base+int64(i),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	r.headPos = base
	r.tasks = append(append([]model.Task{}, ts...), r.tasks...)
	return nil
}

func (r *taskRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *taskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *taskRepo) UpdateTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	res, err := r.db.SQL().ExecContext(ctx,
		`UPDATE tasks SET title = ?, category = ?, completed = ?, time = ?, date = ? WHERE id = ?`,
		t.Title, t.Category, boolToInt(t.Completed), t.Time, t.Date, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}

	r.tasks[idx] = t
	return nil
}

func (r *taskRepo) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	if _, err := r.db.SQL().ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return err
	}

	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, title, description, state, priority, due_date, project_id`

func (r *SQLiteTaskRepo) Upsert(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			state = excluded.state,
			priority = excluded.priority,
			due_date = excluded.due_date,
			project_id = excluded.project_id,
			synced_at = excluded.synced_at`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(domain.ParseTaskState(string(t.State))),
		nullablePositiveInt(t.Priority),
		nullableString(t.DueDate),
		nullableString(t.ProjectID),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting task %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return out, nil
}

// SetState updates a known task's state. Unknown tasks are reported as
// ErrNotFound.
func (r *SQLiteTaskRepo) SetState(ctx context.Context, id string, state domain.TaskState) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET state = ?, synced_at = ? WHERE id = ?`,
		string(state), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating task %s state: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task %s state: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) ReplaceAll(ctx context.Context, tasks []*domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	for _, t := range tasks {
		if err := r.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func scanTask(s rowScanner) (*domain.Task, error) {
	var t domain.Task
	var state string
	var priority sql.NullInt64
	var due, project sql.NullString

	if err := s.Scan(&t.ID, &t.Title, &t.Description, &state, &priority, &due, &project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.State = domain.ParseTaskState(state)
	t.Priority = nullIntValue(priority)
	t.DueDate = due.String
	t.ProjectID = project.String
	return &t, nil
}

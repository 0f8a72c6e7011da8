package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SQLitePlanningRepo implements PlanningRepo using a SQLite database.
type SQLitePlanningRepo struct {
	db db.DBTX
}

func NewSQLitePlanningRepo(conn db.DBTX) *SQLitePlanningRepo {
	return &SQLitePlanningRepo{db: conn}
}

const planningColumns = `id, task_id, planned_date, start_hour, end_hour, priority, done,
	task_title, task_state, task_priority`

func (r *SQLitePlanningRepo) Upsert(ctx context.Context, p *domain.PlanningItem) error {
	query := `INSERT INTO plannings (` + planningColumns + `, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			task_id = excluded.task_id,
			planned_date = excluded.planned_date,
			start_hour = excluded.start_hour,
			end_hour = excluded.end_hour,
			priority = excluded.priority,
			done = excluded.done,
			task_title = excluded.task_title,
			task_state = excluded.task_state,
			task_priority = excluded.task_priority,
			synced_at = excluded.synced_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.TaskID,
		p.CurrentDate,
		nullableString(p.StartTime),
		nullableString(p.EndTime),
		nullablePositiveInt(p.Priority),
		boolToInt(p.Done),
		p.Title,
		string(p.TaskState),
		nullablePositiveInt(p.TaskPriority),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting planning %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLitePlanningRepo) GetByID(ctx context.Context, id string) (*domain.PlanningItem, error) {
	query := `SELECT ` + planningColumns + ` FROM plannings WHERE id = ?`
	p, err := scanPlanning(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("planning %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePlanningRepo) ListByDateRange(ctx context.Context, from, to string) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + planningColumns + ` FROM plannings
		WHERE planned_date BETWEEN ? AND ?
		ORDER BY planned_date, id`
	return r.list(ctx, query, from, to)
}

func (r *SQLitePlanningRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.PlanningItem, error) {
	query := `SELECT ` + planningColumns + ` FROM plannings
		WHERE task_id = ?
		ORDER BY planned_date, id`
	return r.list(ctx, query, taskID)
}

func (r *SQLitePlanningRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plannings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting planning %s: %w", id, err)
	}
	return nil
}

func (r *SQLitePlanningRepo) SetTaskState(ctx context.Context, taskID string, state domain.TaskState) error {
	_, err := r.db.ExecContext(ctx, `UPDATE plannings SET task_state = ?, synced_at = ? WHERE task_id = ?`,
		string(state), nowUTC(), taskID)
	if err != nil {
		return fmt.Errorf("updating plannings of task %s: %w", taskID, err)
	}
	return nil
}

func (r *SQLitePlanningRepo) ReplaceAll(ctx context.Context, items []*domain.PlanningItem) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plannings`); err != nil {
		return fmt.Errorf("clearing plannings: %w", err)
	}
	for _, p := range items {
		if err := r.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanningRepo) list(ctx context.Context, query string, args ...any) ([]*domain.PlanningItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plannings: %w", err)
	}
	defer rows.Close()

	var out []*domain.PlanningItem
	for rows.Next() {
		p, err := scanPlanning(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plannings: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlanning(s rowScanner) (*domain.PlanningItem, error) {
	var p domain.PlanningItem
	var start, end sql.NullString
	var priority, taskPriority sql.NullInt64
	var done int
	var state string

	err := s.Scan(
		&p.ID, &p.TaskID, &p.CurrentDate,
		&start, &end, &priority, &done,
		&p.Title, &state, &taskPriority,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning planning: %w", err)
	}

	p.StartTime = start.String
	p.EndTime = end.String
	p.Priority = nullIntValue(priority)
	p.Done = intToBool(done)
	p.TaskState = domain.ParseTaskState(state)
	p.TaskPriority = nullIntValue(taskPriority)
	return &p, nil
}

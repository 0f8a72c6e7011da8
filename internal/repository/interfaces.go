package repository

import (
	"context"

	"github.com/alexanderramin/planboard/internal/domain"
)

// PlanningRepo stores the local snapshot of plannings.
type PlanningRepo interface {
	Upsert(ctx context.Context, p *domain.PlanningItem) error
	GetByID(ctx context.Context, id string) (*domain.PlanningItem, error)
	// ListByDateRange returns plannings dated from..to inclusive.
	ListByDateRange(ctx context.Context, from, to string) ([]*domain.PlanningItem, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.PlanningItem, error)
	Delete(ctx context.Context, id string) error
	// SetTaskState updates the cached task state of every planning of taskID.
	SetTaskState(ctx context.Context, taskID string, state domain.TaskState) error
	// ReplaceAll swaps the whole snapshot. Run it inside a transaction.
	ReplaceAll(ctx context.Context, items []*domain.PlanningItem) error
}

// TaskRepo stores the local snapshot of tasks.
type TaskRepo interface {
	Upsert(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	SetState(ctx context.Context, id string, state domain.TaskState) error
	ReplaceAll(ctx context.Context, tasks []*domain.Task) error
}

// MetaRepo stores snapshot bookkeeping such as the last sync time.
type MetaRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

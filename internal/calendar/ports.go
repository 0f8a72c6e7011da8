package calendar

import (
	"context"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
)

// SyncClient issues the server mutations behind each gesture.
type SyncClient interface {
	PatchPlanning(ctx context.Context, id string, patch contract.PlanningPatch) (*contract.PlanningRecord, error)
	DeletePlanning(ctx context.Context, id string) error
	CreatePlanning(ctx context.Context, req contract.PlanningCreate) (*contract.PlanningRecord, error)
	PatchTaskState(ctx context.Context, taskID string, state domain.TaskState) (*contract.TaskRecord, error)
}

// Notifier surfaces outcomes to the user.
type Notifier interface {
	Notify(ctx context.Context, level notify.Level, message string)
}

// Outcome describes the board changes of a confirmed gesture.
type Outcome struct {
	Notice  string
	Touched []*domain.PlanningItem
	Removed []string
}

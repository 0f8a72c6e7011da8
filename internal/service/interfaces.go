package service

import (
	"context"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

// Remote is the planning server as seen by the services: the calendar's
// mutations plus the read endpoints.
type Remote interface {
	calendar.SyncClient
	ListPlannings(ctx context.Context) ([]contract.PlanningRecord, error)
	ListTasks(ctx context.Context) ([]contract.TaskRecord, error)
	TaskDetail(ctx context.Context, taskID string) (*contract.TaskGeneralInfo, error)
	Health(ctx context.Context) (*contract.HealthStatus, error)
}

// SyncResult summarizes a snapshot refresh.
type SyncResult struct {
	Tasks     int
	Plannings int
	Skipped   int
	At        time.Time
}

type BoardService interface {
	// Sync replaces the local snapshot with the server's tasks and plannings.
	Sync(ctx context.Context) (*SyncResult, error)
	// Load builds a sorted board for the window starting at start. Extra
	// dates get lists too, so gestures can reach days outside the window.
	Load(ctx context.Context, start time.Time, days int, extraDates ...string) (*calendar.Board, error)
	// Controller wires a controller for board to the server.
	Controller(board *calendar.Board, notifier calendar.Notifier) *calendar.Controller
	// Apply persists the board changes of a confirmed gesture.
	Apply(ctx context.Context, out *calendar.Outcome) error
	Planning(ctx context.Context, id string) (*domain.PlanningItem, error)
	LastSync(ctx context.Context) (time.Time, bool)
}

type TaskService interface {
	Detail(ctx context.Context, taskID string) (*domain.TaskDetail, error)
	Health(ctx context.Context) (*contract.HealthStatus, error)
}

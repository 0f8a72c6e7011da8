package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/planboard/internal/domain"
)

var testIDCounter atomic.Int64

func nextID() string {
	return fmt.Sprintf("%d", 1000+testIDCounter.Add(1))
}

// Planning options
type PlanningOption func(*domain.PlanningItem)

func WithID(id string) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.ID = id
	}
}

func WithTaskID(id string) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.TaskID = id
	}
}

func WithHours(start, end string) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.StartTime = start
		p.EndTime = end
	}
}

func WithPriority(n int) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.Priority = n
	}
}

func WithDone(done bool) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.Done = done
	}
}

func WithTaskState(s domain.TaskState) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.TaskState = s
	}
}

func WithTaskPriority(n int) PlanningOption {
	return func(p *domain.PlanningItem) {
		p.TaskPriority = n
	}
}

// NewTestPlanning returns a pending, unscheduled planning of a fresh task.
func NewTestPlanning(title, date string, opts ...PlanningOption) *domain.PlanningItem {
	p := &domain.PlanningItem{
		ID:          nextID(),
		TaskID:      nextID(),
		CurrentDate: date,
		Title:       title,
		TaskState:   domain.TaskPending,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskState) TaskOption {
	return func(t *domain.Task) {
		t.State = s
	}
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:    nextID(),
		Title: title,
		State: domain.TaskPending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type taskService struct {
	remote   Remote
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(remote Remote, tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{remote: remote, tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

// Detail fetches the general info of a task and refreshes its snapshot row.
func (s *taskService) Detail(ctx context.Context, taskID string) (detail *domain.TaskDetail, err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "task-detail", startedAt, map[string]any{"task_id": taskID}, &err)

	info, err := s.remote.TaskDetail(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("fetching task %s: %w", taskID, err)
	}
	d := contract.ToTaskDetail(*info)
	if d.ID == "" {
		d.ID = taskID
	}
	if err := s.tasks.Upsert(ctx, &d.Task); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *taskService) Health(ctx context.Context) (*contract.HealthStatus, error) {
	return s.remote.Health(ctx)
}

package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
)

// Call is one request recorded by FakeSyncClient.
type Call struct {
	Method string
	Path   string
	Body   string
}

// FakeSyncClient records every mutation and answers from its fields.
// A non-nil Err fails every call; Errs fails calls by method name.
type FakeSyncClient struct {
	mu sync.Mutex

	Calls  []Call
	Err    error
	Errs   map[string]error
	Create *contract.PlanningRecord
	nextID int
}

func (f *FakeSyncClient) record(method, path string, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := Call{Method: method, Path: path}
	if body != nil {
		b, _ := json.Marshal(body)
		c.Body = string(b)
	}
	f.Calls = append(f.Calls, c)
	if f.Err != nil {
		return f.Err
	}
	return f.Errs[method]
}

func (f *FakeSyncClient) PatchPlanning(ctx context.Context, id string, patch contract.PlanningPatch) (*contract.PlanningRecord, error) {
	if err := f.record("PATCH", "/tasks/task_planning/"+id, patch); err != nil {
		return nil, err
	}
	return &contract.PlanningRecord{ID: contract.ID(id)}, nil
}

func (f *FakeSyncClient) DeletePlanning(ctx context.Context, id string) error {
	return f.record("DELETE", "/tasks/task_planning/"+id, nil)
}

// CreatePlanning returns Create when set, otherwise a record echoing req
// with a fresh id and no nested task.
func (f *FakeSyncClient) CreatePlanning(ctx context.Context, req contract.PlanningCreate) (*contract.PlanningRecord, error) {
	if err := f.record("POST", "/tasks/task_planning/", req); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Create != nil {
		rec := *f.Create
		return &rec, nil
	}
	f.nextID++
	p := req.Priority
	return &contract.PlanningRecord{
		ID:          contract.ID(strconv.Itoa(9000 + f.nextID)),
		TaskID:      req.TaskID,
		PlannedDate: req.PlannedDate,
		Priority:    &p,
	}, nil
}

func (f *FakeSyncClient) PatchTaskState(ctx context.Context, taskID string, state domain.TaskState) (*contract.TaskRecord, error) {
	if err := f.record("PATCH", "/tasks/tasks/"+taskID, contract.TaskStatePatch{State: string(state)}); err != nil {
		return nil, err
	}
	return &contract.TaskRecord{ID: contract.ID(taskID), State: string(state)}, nil
}

// CallCount returns the number of recorded calls.
func (f *FakeSyncClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// LastCall returns the most recent call, or the zero Call.
func (f *FakeSyncClient) LastCall() Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return Call{}
	}
	return f.Calls[len(f.Calls)-1]
}


// Notice is one notification captured by RecordingNotifier.
type Notice struct {
	Level   notify.Level
	Message string
}

// RecordingNotifier captures notifications instead of displaying them.
type RecordingNotifier struct {
	mu      sync.Mutex
	Notices []Notice
}

func (r *RecordingNotifier) Notify(ctx context.Context, level notify.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, Notice{Level: level, Message: message})
}

// Levels returns the level of every captured notice in order.
func (r *RecordingNotifier) Levels() []notify.Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Level, len(r.Notices))
	for i, n := range r.Notices {
		out[i] = n.Level
	}
	return out
}

// Last returns the most recent notice, or the zero Notice.
func (r *RecordingNotifier) Last() Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Notices) == 0 {
		return Notice{}
	}
	return r.Notices[len(r.Notices)-1]
}

// FakeRemote adds the read endpoints to FakeSyncClient.
type FakeRemote struct {
	FakeSyncClient

	Tasks     []contract.TaskRecord
	Plannings []contract.PlanningRecord
	Details   map[string]*contract.TaskGeneralInfo
	ReadErr   error
}

func (f *FakeRemote) ListPlannings(ctx context.Context) ([]contract.PlanningRecord, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.Plannings, nil
}

func (f *FakeRemote) ListTasks(ctx context.Context) ([]contract.TaskRecord, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.Tasks, nil
}

func (f *FakeRemote) TaskDetail(ctx context.Context, taskID string) (*contract.TaskGeneralInfo, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	info, ok := f.Details[taskID]
	if !ok {
		return nil, errors.New("task not found")
	}
	return info, nil
}

func (f *FakeRemote) Health(ctx context.Context) (*contract.HealthStatus, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return &contract.HealthStatus{Status: "ok"}, nil
}

// PlanningRecord builds a server planning for task on date.
func PlanningRecord(id, taskID, date string) contract.PlanningRecord {
	return contract.PlanningRecord{
		ID:          contract.ID(id),
		TaskID:      contract.ID(taskID),
		PlannedDate: date,
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/testutil"
)

type boardFixture struct {
	svc       BoardService
	remote    *testutil.FakeRemote
	plannings *repository.SQLitePlanningRepo
	tasks     *repository.SQLiteTaskRepo
}

func newBoardFixture(t *testing.T, uow ...db.UnitOfWork) *boardFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	remote := &testutil.FakeRemote{}
	plannings := repository.NewSQLitePlanningRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	var u db.UnitOfWork = testutil.NewTestUoW(database)
	if len(uow) > 0 {
		u = uow[0]
	}
	svc := NewBoardService(remote, plannings, repository.NewSQLiteMetaRepo(database), u,
		BoardOptions{DuplicatePriority: domain.DefaultDuplicatePriority})
	return &boardFixture{svc: svc, remote: remote, plannings: plannings, tasks: tasks}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func seedRemote(r *testutil.FakeRemote) {
	start := "09:00:00"
	prio := 2
	r.Tasks = []contract.TaskRecord{
		{ID: "1", Title: "Essay", State: "in_progress", Priority: &prio},
		{ID: "2", Title: "Gym", State: "pending"},
	}
	essay := testutil.PlanningRecord("10", "1", "2024-05-01")
	essay.StartHour = &start
	r.Plannings = []contract.PlanningRecord{
		essay,
		testutil.PlanningRecord("11", "2", "2024-05-01"),
		testutil.PlanningRecord("12", "2", "2024-05-03"),
		testutil.PlanningRecord("13", "2", "not-a-date"),
	}
}

func TestBoardService_SyncStoresSnapshot(t *testing.T) {
	f := newBoardFixture(t)
	seedRemote(f.remote)
	ctx := context.Background()

	res, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Tasks)
	assert.Equal(t, 3, res.Plannings)
	assert.Equal(t, 1, res.Skipped)

	p, err := f.plannings.GetByID(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, "Essay", p.Title)
	assert.Equal(t, "09:00", p.StartTime)
	assert.Equal(t, domain.TaskInProgress, p.TaskState)
	assert.Equal(t, 2, p.TaskPriority)

	_, ok := f.svc.LastSync(ctx)
	assert.True(t, ok)
}

func TestBoardService_SyncReplacesPreviousSnapshot(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	stale := testutil.NewTestPlanning("stale", "2024-05-01")
	require.NoError(t, f.plannings.Upsert(ctx, stale))
	seedRemote(f.remote)

	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	_, err = f.plannings.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBoardService_SyncRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plannings := repository.NewSQLitePlanningRepo(database)
	kept := testutil.NewTestPlanning("kept", "2024-05-01")
	require.NoError(t, plannings.Upsert(ctx, kept))

	remote := &testutil.FakeRemote{}
	seedRemote(remote)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: errors.New("disk full")}
	svc := NewBoardService(remote, plannings, repository.NewSQLiteMetaRepo(database), uow, BoardOptions{})

	_, err := svc.Sync(ctx)
	require.Error(t, err)

	_, err = plannings.GetByID(ctx, kept.ID)
	assert.NoError(t, err, "snapshot should be untouched after rollback")
}

func TestBoardService_SyncRemoteFailure(t *testing.T) {
	f := newBoardFixture(t)
	f.remote.ReadErr = errors.New("offline")

	_, err := f.svc.Sync(context.Background())

	assert.ErrorContains(t, err, "offline")
	_, ok := f.svc.LastSync(context.Background())
	assert.False(t, ok)
}

func TestBoardService_LoadWindowAndExtraDates(t *testing.T) {
	f := newBoardFixture(t)
	seedRemote(f.remote)
	ctx := context.Background()
	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	board, err := f.svc.Load(ctx, day(t, "2024-05-01"), 2)
	require.NoError(t, err)

	l, ok := board.List("2024-05-01")
	require.True(t, ok)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "10", l.Items()[0].ID, "timed planning sorts first")
	_, ok = board.Item("12")
	assert.False(t, ok)

	board, err = f.svc.Load(ctx, day(t, "2024-05-01"), 1, "2024-05-03", "2024-05-01")
	require.NoError(t, err)
	_, ok = board.Item("12")
	assert.True(t, ok)
	l, _ = board.List("2024-05-01")
	assert.Equal(t, 2, l.Len())

	_, err = f.svc.Load(ctx, day(t, "2024-05-01"), 1, "May 3")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestBoardService_GestureIsPersisted(t *testing.T) {
	f := newBoardFixture(t)
	seedRemote(f.remote)
	ctx := context.Background()
	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	board, err := f.svc.Load(ctx, day(t, "2024-05-01"), 4)
	require.NoError(t, err)
	notifier := &testutil.RecordingNotifier{}
	ctrl := f.svc.Controller(board, notifier)

	require.NoError(t, ctrl.DragStart("11"))
	out, err := ctrl.Drop(ctx, calendar.DayZone("2024-05-02"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Apply(ctx, out))

	moved, err := f.svc.Planning(ctx, "11")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", moved.CurrentDate)

	require.NoError(t, ctrl.DragStart("12"))
	out, err = ctrl.Drop(ctx, calendar.ActionZone(domain.ActionCompleteTask))
	require.NoError(t, err)
	require.NoError(t, f.svc.Apply(ctx, out))

	for _, id := range []string{"11", "12"} {
		p, err := f.svc.Planning(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskCompleted, p.TaskState, id)
	}
	task, err := f.tasks.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, task.State)

	require.NoError(t, ctrl.DragStart("10"))
	out, err = ctrl.Drop(ctx, calendar.ActionZone(domain.ActionDelete))
	require.NoError(t, err)
	require.NoError(t, f.svc.Apply(ctx, out))

	_, err = f.svc.Planning(ctx, "10")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBoardService_ApplyNil(t *testing.T) {
	f := newBoardFixture(t)
	assert.NoError(t, f.svc.Apply(context.Background(), nil))
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func TestPlanningRepo_UpsertAndGetByID(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlanning("Essay", "2024-05-01",
		testutil.WithHours("09:00", "10:00"),
		testutil.WithPriority(4),
		testutil.WithDone(true),
		testutil.WithTaskState(domain.TaskInProgress),
		testutil.WithTaskPriority(2),
	)
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Clone(), got)
}

func TestPlanningRepo_UpsertOverwrites(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPlanning("Essay", "2024-05-01", testutil.WithHours("09:00", ""))
	require.NoError(t, repo.Upsert(ctx, p))

	p.CurrentDate = "2024-05-03"
	p.StartTime = ""
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-03", got.CurrentDate)
	assert.Equal(t, "", got.StartTime)
}

func TestPlanningRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanningRepo_ListByDateRange(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	before := testutil.NewTestPlanning("before", "2024-04-30")
	first := testutil.NewTestPlanning("first", "2024-05-01")
	last := testutil.NewTestPlanning("last", "2024-05-04")
	after := testutil.NewTestPlanning("after", "2024-05-05")
	for _, p := range []*domain.PlanningItem{after, last, first, before} {
		require.NoError(t, repo.Upsert(ctx, p))
	}

	got, err := repo.ListByDateRange(ctx, "2024-05-01", "2024-05-04")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, last.ID, got[1].ID)
}

func TestPlanningRepo_ListByTaskAndDelete(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithTaskID("t1"))
	b := testutil.NewTestPlanning("b", "2024-05-02", testutil.WithTaskID("t1"))
	require.NoError(t, repo.Upsert(ctx, a))
	require.NoError(t, repo.Upsert(ctx, b))

	require.NoError(t, repo.Delete(ctx, a.ID))

	got, err := repo.ListByTask(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestPlanningRepo_SetTaskState(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithTaskID("t1"))
	b := testutil.NewTestPlanning("b", "2024-05-09", testutil.WithTaskID("t1"))
	other := testutil.NewTestPlanning("c", "2024-05-01", testutil.WithTaskID("t2"))
	for _, p := range []*domain.PlanningItem{a, b, other} {
		require.NoError(t, repo.Upsert(ctx, p))
	}

	require.NoError(t, repo.SetTaskState(ctx, "t1", domain.TaskCompleted))

	got, err := repo.ListByTask(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, domain.TaskCompleted, p.TaskState)
	}
	untouched, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, untouched.TaskState)
}

func TestPlanningRepo_ReplaceAll(t *testing.T) {
	repo := NewSQLitePlanningRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	old := testutil.NewTestPlanning("old", "2024-05-01")
	require.NoError(t, repo.Upsert(ctx, old))

	fresh := testutil.NewTestPlanning("fresh", "2024-05-02")
	require.NoError(t, repo.ReplaceAll(ctx, []*domain.PlanningItem{fresh}))

	_, err := repo.GetByID(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func TestTaskRepo_UpsertGetAndList(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	b := testutil.NewTestTask("Bravo", testutil.WithDueDate("2024-06-01"), testutil.WithDescription("**bold**"))
	a := testutil.NewTestTask("Alpha", testutil.WithTaskStatus(domain.TaskCompleted))
	require.NoError(t, repo.Upsert(ctx, b))
	require.NoError(t, repo.Upsert(ctx, a))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title)
	assert.Equal(t, domain.TaskCompleted, all[0].State)
}

func TestTaskRepo_SetState(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Alpha")
	require.NoError(t, repo.Upsert(ctx, task))

	require.NoError(t, repo.SetState(ctx, task.ID, domain.TaskInProgress))
	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.State)

	assert.ErrorIs(t, repo.SetState(ctx, "missing", domain.TaskCompleted), ErrNotFound)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetaRepo(t *testing.T) {
	repo := NewSQLiteMetaRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, MetaLastSync)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Set(ctx, MetaLastSync, "2024-05-01T10:00:00Z"))
	require.NoError(t, repo.Set(ctx, MetaLastSync, "2024-05-02T10:00:00Z"))

	v, err := repo.Get(ctx, MetaLastSync)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02T10:00:00Z", v)
}

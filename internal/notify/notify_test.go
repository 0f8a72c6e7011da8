package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter(now *time.Time) *Center {
	c := NewCenter(DefaultConfig(), nil)
	c.now = func() time.Time { return *now }
	return c
}

func TestCenter_EvictsOldestBeyondMaxVisible(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := newTestCenter(&now)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		c.Notify(ctx, LevelInfo, fmt.Sprintf("msg %d", i))
	}

	active := c.Active(now)
	require.Len(t, active, 5)
	assert.Equal(t, "msg 2", active[0].Message)
	assert.Equal(t, "msg 6", active[4].Message)
}

func TestCenter_ToastsExpireAfterTimeout(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := newTestCenter(&now)

	c.Notify(context.Background(), LevelSuccess, "saved")

	assert.Len(t, c.Active(now.Add(2999*time.Millisecond)), 1)
	assert.Empty(t, c.Active(now.Add(3*time.Second)))
}

func TestCenter_Dismiss(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := newTestCenter(&now)

	toast := c.Push(context.Background(), LevelDanger, "Error: boom")
	assert.Contains(t, toast.ID, "notification-")

	assert.True(t, c.Dismiss(toast.ID))
	assert.False(t, c.Dismiss(toast.ID))
	assert.Empty(t, c.Active(now))
}

func TestCenter_DrainEmptiesQueue(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := newTestCenter(&now)
	c.Notify(context.Background(), LevelInfo, "a")
	c.Notify(context.Background(), LevelInfo, "b")

	drained := c.Drain()
	require.Len(t, drained, 2)
	assert.Empty(t, c.Drain())
}

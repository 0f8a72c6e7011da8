package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func TestRender(t *testing.T) {
	item := testutil.NewTestPlanning("Write report", "2024-05-01",
		testutil.WithHours("09:00", "10:30"),
		testutil.WithPriority(4),
		testutil.WithTaskPriority(2),
		testutil.WithTaskState(domain.TaskInProgress),
	)

	v := Render(item)

	assert.Equal(t, []string{ClassItem}, v.Classes)
	assert.Equal(t, "Write report", v.Title)
	assert.Equal(t, "09:00 - 10:30", v.TimeText)
	assert.Equal(t, IconSpinner, v.StateIcon)
	assert.Equal(t, 2, v.TaskBadge)
	assert.Equal(t, "priority-fill priority-4", v.PriorityBar)
}

func TestRender_DoneClassFollowsPlanningOnly(t *testing.T) {
	taskDone := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithTaskState(domain.TaskCompleted))
	v := Render(taskDone)
	assert.False(t, v.HasClass(ClassDone))
	assert.Equal(t, IconCheck, v.StateIcon)

	planDone := testutil.NewTestPlanning("b", "2024-05-01", testutil.WithDone(true))
	v = Render(planDone)
	assert.True(t, v.HasClass(ClassDone))
	assert.Equal(t, IconNone, v.StateIcon)
}

func TestRender_InvalidValuesFallBack(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithPriority(9), testutil.WithTaskPriority(7))

	v := Render(item)

	assert.Equal(t, "priority-fill priority-0", v.PriorityBar)
	assert.Equal(t, 0, v.TaskBadge)
}

func TestRender_Dragging(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01")
	item.Dragging = true
	assert.True(t, Render(item).HasClass(ClassDragging))
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer()
	item := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithPriority(3))

	assert.True(t, n.Normalize(item))
	assert.False(t, n.Normalize(item))
	assert.Equal(t, 1, n.Rebuilds())

	item.TaskState = domain.TaskCompleted
	assert.True(t, n.Normalize(item))
	v, ok := n.View(item.ID)
	assert.True(t, ok)
	assert.Equal(t, IconCheck, v.StateIcon)

	item.TaskState = domain.TaskPending
	assert.True(t, n.Normalize(item))
	v, _ = n.View(item.ID)
	assert.Equal(t, IconNone, v.StateIcon, "superfluous icon is removed")
}

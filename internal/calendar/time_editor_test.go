package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func TestTimeEditor_OpenReplacesBinding(t *testing.T) {
	a := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithHours("09:00", "10:00"))
	b := testutil.NewTestPlanning("b", "2024-05-01")
	h := newHarness(t, a, b)
	ed := h.ctrl.Editor()

	require.NoError(t, ed.Open(a.ID, 100, 40))
	x, y := ed.Position()
	assert.Equal(t, 105, x)
	assert.Equal(t, 45, y)
	start, end := ed.Values()
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "10:00", end)

	require.NoError(t, ed.Open(b.ID, 0, 0))
	assert.Equal(t, b.ID, ed.PlanningID())

	_, err := ed.Save(context.Background(), "08:00", "")
	require.NoError(t, err)
	assert.Equal(t, "08:00", b.StartTime)
	assert.Equal(t, "09:00", a.StartTime)
	assert.Equal(t, 1, h.client.CallCount())
}

func TestTimeEditor_Save(t *testing.T) {
	late := testutil.NewTestPlanning("late", "2024-05-01", testutil.WithHours("11:00", ""))
	item := testutil.NewTestPlanning("a", "2024-05-01")
	h := newHarness(t, late, item)
	ed := h.ctrl.Editor()
	require.NoError(t, ed.Open(item.ID, 0, 0))

	out, err := ed.Save(context.Background(), "9:15", "10:00")
	require.NoError(t, err)

	assert.JSONEq(t, `{"start_hour":"09:15","end_hour":"10:00"}`, h.client.LastCall().Body)
	assert.Equal(t, []*domain.PlanningItem{item}, out.Touched)
	v, _ := h.board.View(item.ID)
	assert.Equal(t, "09:15 - 10:00", v.TimeText)
	l, _ := h.board.List("2024-05-01")
	assert.Equal(t, []string{item.ID, late.ID}, ids(l.Items()))
	assert.False(t, ed.IsOpen())
	assert.Equal(t, "Time updated successfully", h.notifier.Last().Message)
}

func TestTimeEditor_ClearEndSendsNull(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01", testutil.WithHours("09:00", "10:00"))
	h := newHarness(t, item)
	require.NoError(t, h.ctrl.Editor().Open(item.ID, 0, 0))

	_, err := h.ctrl.Editor().Save(context.Background(), "09:00", "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"start_hour":"09:00","end_hour":null}`, h.client.LastCall().Body)
	assert.Equal(t, "", item.EndTime)
}

func TestTimeEditor_BothEmptyJustCloses(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01")
	h := newHarness(t, item)
	ed := h.ctrl.Editor()
	require.NoError(t, ed.Open(item.ID, 0, 0))

	out, err := ed.Save(context.Background(), " ", "")

	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, ed.IsOpen())
	assert.Zero(t, h.client.CallCount())
}

func TestTimeEditor_InvalidHourKeepsOpen(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01")
	h := newHarness(t, item)
	ed := h.ctrl.Editor()
	require.NoError(t, ed.Open(item.ID, 0, 0))

	_, err := ed.Save(context.Background(), "25:99", "")

	assert.ErrorIs(t, err, domain.ErrInvalidHour)
	assert.True(t, ed.IsOpen())
	assert.Zero(t, h.client.CallCount())
	assert.Equal(t, notify.LevelDanger, h.notifier.Last().Level)
}

func TestTimeEditor_ServerFailureCloses(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01")
	h := newHarness(t, item)
	h.client.Err = errors.New("offline")
	ed := h.ctrl.Editor()
	require.NoError(t, ed.Open(item.ID, 0, 0))

	_, err := ed.Save(context.Background(), "09:00", "")

	require.Error(t, err)
	assert.False(t, ed.IsOpen())
	assert.Equal(t, "", item.StartTime)
	assert.Equal(t, "Error: offline", h.notifier.Last().Message)
}

func TestTimeEditor_HandleClick(t *testing.T) {
	item := testutil.NewTestPlanning("a", "2024-05-01")
	h := newHarness(t, item)
	ed := h.ctrl.Editor()
	require.NoError(t, ed.Open(item.ID, 0, 0))

	assert.False(t, ed.HandleClick(ClickInsideMenu))
	assert.False(t, ed.HandleClick(ClickOnPlanning))
	assert.True(t, ed.IsOpen())
	assert.True(t, ed.HandleClick(ClickElsewhere))
	assert.False(t, ed.IsOpen())
	assert.False(t, ed.HandleClick(ClickElsewhere))

	_, err := ed.Save(context.Background(), "09:00", "")
	assert.ErrorIs(t, err, ErrEditorClosed)
}

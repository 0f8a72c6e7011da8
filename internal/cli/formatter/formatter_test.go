package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestDayLabel(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		date string
		want string
	}{
		{"2026-03-10", "Today"},
		{"2026-03-11", "Tomorrow"},
		{"2026-03-09", "Yesterday"},
		{"2026-03-14", "Sat Mar 14"},
		{"not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(tt.date, today))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long…", Truncate("long title", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 task", Plural(1, "task"))
	assert.Equal(t, "0 tasks", Plural(0, "task"))
	assert.Equal(t, "4 plannings", Plural(4, "planning"))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{{"1", StyleGreen.Render("Write")}, {"22", "Read"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  TITLE", lines[0])
	assert.Equal(t, "1   Write", lines[2])
	assert.Equal(t, "22  Read", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatBoard_ShowsColumnsAndPlaceholder(t *testing.T) {
	start := mustDate(t, "2026-03-10")
	b := calendar.NewBoard(start, 2)
	b.Load([]*domain.PlanningItem{
		testutil.NewTestPlanning("Write report", "2026-03-10",
			testutil.WithHours("09:00", "10:30"),
			testutil.WithTaskState(domain.TaskInProgress),
			testutil.WithTaskPriority(2)),
	})

	out := stripANSI(FormatBoard(b, BoardOptions{Today: start, ColumnWidth: 30}))
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "Write report ◐ P2")
	assert.Contains(t, out, "09:00 - 10:30")
	assert.Contains(t, out, calendar.PlaceholderText)
}

func TestFormatBoard_PlaceholderFitsDefaultWidth(t *testing.T) {
	start := mustDate(t, "2026-03-10")
	b := calendar.NewBoard(start, 1)

	out := stripANSI(FormatBoard(b, BoardOptions{Today: start}))
	assert.Contains(t, out, calendar.PlaceholderText)
	assert.NotContains(t, out, "…")
}

func TestFormatBoard_NarrowColumnWrapsPlaceholder(t *testing.T) {
	start := mustDate(t, "2026-03-10")
	b := calendar.NewBoard(start, 1)

	out := stripANSI(FormatBoard(b, BoardOptions{Today: start, ColumnWidth: 20}))
	assert.NotContains(t, out, "…")
	assert.Contains(t, out, "No plannings for")
	assert.Contains(t, out, "this day.")
}

func TestFormatCard_UntitledAndUnscheduled(t *testing.T) {
	item := testutil.NewTestPlanning("", "2026-03-10", testutil.WithID("77"), testutil.WithDone(true))
	out := stripANSI(FormatCard(item, calendar.Render(item), 24, false))
	assert.Equal(t, "▌ Planning 77", out)
}

func TestFormatPlanningTable(t *testing.T) {
	b := calendar.NewBoard(mustDate(t, "2026-03-10"), 1)
	out := stripANSI(FormatPlanningTable(b))
	assert.Contains(t, out, calendar.PlaceholderText)

	b.Load([]*domain.PlanningItem{
		testutil.NewTestPlanning("Gym", "2026-03-10", testutil.WithID("5"), testutil.WithPriority(4), testutil.WithDone(true)),
	})
	out = stripANSI(FormatPlanningTable(b))
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Gym")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Pending")
}

func TestFormatToasts(t *testing.T) {
	assert.Empty(t, FormatToasts(nil))

	out := stripANSI(FormatToasts([]notify.Toast{
		{Level: notify.LevelSuccess, Message: "Planning moved successfully"},
		{Level: notify.LevelDanger, Message: "Error: Failed to patch"},
	}))
	assert.Equal(t, "✔ Planning moved successfully\n✖ Error: Failed to patch\n", out)
}

func TestFormatSync(t *testing.T) {
	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	out := stripANSI(FormatSync(1, 3, 2, at))
	assert.Contains(t, out, "Synced 1 task and 3 plannings")
	assert.Contains(t, out, "(2 skipped)")
}

func TestFormatTaskDetail(t *testing.T) {
	d := &domain.TaskDetail{
		Task: domain.Task{
			ID:          "4",
			Title:       "Write report",
			Description: "Quarterly **numbers**",
			State:       domain.TaskCompleted,
			Priority:    3,
			DueDate:     "2026-03-20",
		},
		Project:   &domain.ProjectInfo{Name: "Work"},
		LastNotes: []domain.Note{{Content: "draft sent"}},
		NextPlannings: []domain.PlanningItem{
			{ID: "11", CurrentDate: "2026-03-12", StartTime: "09:00"},
		},
	}

	out := stripANSI(FormatTaskDetail(d, 60))
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "P3 · due 2026-03-20 · Work")
	assert.Contains(t, out, "numbers")
	assert.Contains(t, out, "draft sent")
	assert.Contains(t, out, "2026-03-12")
}

func TestFormatTaskDetail_NoPlannings(t *testing.T) {
	out := stripANSI(FormatTaskDetail(&domain.TaskDetail{Task: domain.Task{ID: "9"}}, 40))
	assert.Contains(t, out, "Task 9")
	assert.Contains(t, out, "none scheduled")
}

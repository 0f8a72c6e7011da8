package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const DefaultColumnWidth = 30

// BoardOptions controls the board projection.
type BoardOptions struct {
	Today       time.Time
	ColumnWidth int
	// Selected highlights one planning card; FocusDate highlights a column.
	Selected  string
	FocusDate string
}

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)
	focusColumnStyle = columnStyle.BorderForeground(ColorHeader)
	hoverColumnStyle = columnStyle.BorderForeground(ColorYellow)

	selectedCard = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	draggingCard = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
	doneCard     = lipgloss.NewStyle().Foreground(ColorDim).Strikethrough(true)
)

// FormatBoard renders the visible window as side-by-side day columns.
func FormatBoard(b *calendar.Board, opts BoardOptions) string {
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = DefaultColumnWidth
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}
	var cols []string
	for _, date := range b.Window() {
		l, ok := b.List(date)
		if !ok {
			continue
		}
		cols = append(cols, formatColumn(b, l, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func formatColumn(b *calendar.Board, l *calendar.DayList, opts BoardOptions) string {
	inner := opts.ColumnWidth - 4
	lines := []string{
		StyleHeader.Render(Truncate(DayLabel(l.Date, opts.Today), inner)),
		StyleDim.Render(l.Date),
		"",
	}
	if text := l.Placeholder(); text != "" {
		lines = append(lines, StyleDim.Italic(true).Width(inner).Render(text))
	}
	for _, item := range l.Items() {
		view, ok := b.View(item.ID)
		if !ok {
			view = calendar.Render(item)
		}
		lines = append(lines, FormatCard(item, view, inner, item.ID == opts.Selected))
	}

	style := columnStyle
	switch {
	case l.Hovered():
		style = hoverColumnStyle
	case l.Date == opts.FocusDate:
		style = focusColumnStyle
	}
	return style.Width(opts.ColumnWidth - 2).Render(strings.Join(lines, "\n"))
}

// FormatCard renders one planning as a two-line card: priority bar, title,
// task state icon and badge, then the time range.
func FormatCard(item *domain.PlanningItem, v calendar.View, width int, selected bool) string {
	bar := PriorityStyle(v.Priority).Render("▌")
	title := v.Title
	if title == "" {
		title = "Planning " + item.ID
	}
	suffix := stateGlyph(v.StateIcon)
	if v.TaskBadge > 0 {
		suffix += fmt.Sprintf(" P%d", v.TaskBadge)
	}
	title = Truncate(title, max(width-2-lipgloss.Width(suffix), 4))

	style := StyleFg
	switch {
	case v.HasClass(calendar.ClassDragging):
		style = draggingCard
	case selected:
		style = selectedCard
	case v.HasClass(calendar.ClassDone):
		style = doneCard
	}
	line := bar + " " + style.Render(title) + StylePurple.Render(suffix)
	if v.TimeText == "" {
		return line
	}
	return line + "\n  " + StyleDim.Render(v.TimeText)
}

func stateGlyph(icon calendar.StateIcon) string {
	switch icon {
	case calendar.IconCheck:
		return " ✔"
	case calendar.IconSpinner:
		return " ◐"
	default:
		return ""
	}
}

// FormatPlanningTable lists plannings one per row, as printed by the
// non-interactive board command.
func FormatPlanningTable(b *calendar.Board) string {
	var rows [][]string
	for _, date := range b.Window() {
		l, ok := b.List(date)
		if !ok {
			continue
		}
		for _, item := range l.Items() {
			done := ""
			if item.Done {
				done = StyleGreen.Render("✔")
			}
			prio := Dim("-")
			if p, ok := item.PlanningPriority(); ok {
				prio = PriorityStyle(p).Render(fmt.Sprintf("%d", p))
			}
			rows = append(rows, []string{
				item.ID, date, calendar.FormatRange(item.StartTime, item.EndTime),
				item.Title, prio, done, TaskStatePill(item.TaskState),
			})
		}
	}
	if len(rows) == 0 {
		return Dim(calendar.PlaceholderText) + "\n"
	}
	return RenderTable([]string{"ID", "DATE", "TIME", "TITLE", "PRIO", "DONE", "TASK"}, rows)
}

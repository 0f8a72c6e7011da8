package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for a terminal of the given width. It falls back
// to the raw text when the renderer cannot be built.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// FormatTaskDetail renders the general-info view of a task.
func FormatTaskDetail(d *domain.TaskDetail, width int) string {
	var b strings.Builder

	title := d.Title
	if title == "" {
		title = "Task " + d.ID
	}
	b.WriteString(Bold(title) + "  " + TaskStatePill(d.State) + "\n")

	var meta []string
	if d.Priority >= domain.MinPriority && d.Priority <= domain.MaxPriority {
		meta = append(meta, PriorityStyle(d.Priority).Render(fmt.Sprintf("P%d", d.Priority)))
	}
	if d.DueDate != "" {
		meta = append(meta, "due "+d.DueDate)
	}
	if d.Project != nil && d.Project.Name != "" {
		meta = append(meta, StylePurple.Render(d.Project.Name))
	}
	if len(meta) > 0 {
		b.WriteString(Dim(strings.Join(meta, " · ")) + "\n")
	}

	if desc := RenderMarkdown(d.Description, width); desc != "" {
		b.WriteString("\n" + desc + "\n")
	}

	if len(d.LastNotes) > 0 {
		b.WriteString("\n" + Header("Last notes") + "\n")
		for _, n := range d.LastNotes {
			b.WriteString("  • " + n.Content + "\n")
		}
	}

	b.WriteString("\n" + Header("Next plannings") + "\n")
	if len(d.NextPlannings) == 0 {
		b.WriteString(Dim("  none scheduled") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(d.NextPlannings))
	for _, p := range d.NextPlannings {
		rows = append(rows, []string{p.ID, p.CurrentDate, calendar.FormatRange(p.StartTime, p.EndTime)})
	}
	b.WriteString(RenderTable([]string{"ID", "DATE", "TIME"}, rows))
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)
	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// DayLabel names a board date relative to today: "Today", "Tomorrow",
// "Yesterday", otherwise the short weekday and day of month.
func DayLabel(date string, today time.Time) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	t, _ := time.Parse(domain.DateLayout, today.Format(domain.DateLayout))
	switch int(d.Sub(t).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	return d.Format("Mon Jan 2")
}

// TruncID shortens long ids for table cells.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate cuts s to width visible cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 {
		return "…"
	}
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}

// Plural renders "1 planning" / "3 plannings".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// priorityColors indexes the priority bar fill by level. Level 0 is unset.
var priorityColors = [...]lipgloss.Color{ColorDim, ColorBlue, ColorGreen, ColorYellow, ColorHeader, ColorRed}

// PriorityStyle returns the fill style of a priority bar level.
func PriorityStyle(level int) lipgloss.Style {
	if level < 0 || level >= len(priorityColors) {
		level = 0
	}
	return lipgloss.NewStyle().Foreground(priorityColors[level])
}

// LevelStyle maps a toast level to its color.
func LevelStyle(level notify.Level) lipgloss.Style {
	switch level {
	case notify.LevelSuccess:
		return StyleGreen
	case notify.LevelWarning:
		return StyleYellow
	case notify.LevelDanger:
		return StyleRed
	default:
		return StyleBlue
	}
}

// TaskStatePill returns a colored indicator for a task state.
func TaskStatePill(state domain.TaskState) string {
	switch state {
	case domain.TaskCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.TaskInProgress:
		return StyleYellow.Render("◐ In Progress")
	case domain.TaskArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleBlue.Render("○ Pending")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

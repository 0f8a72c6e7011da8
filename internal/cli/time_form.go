package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// planboardHuhTheme returns a huh theme matching the board palette.
func planboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// timeFields holds the values bound to the time editor form.
type timeFields struct {
	start string
	end   string
}

// validateOptionalHour accepts empty or an HH:MM hour. The form hints at the
// format; the editor itself still rejects bad values on save.
func validateOptionalHour(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.NormalizeHour(s); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

func hourInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(validateOptionalHour)
}

// timeEditorForm builds the context-menu form for one planning's hours.
func timeEditorForm(title string, f *timeFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Edit time").Description(title),
			hourInput("Start (HH:MM)", &f.start),
			hourInput("End (HH:MM)", &f.end),
		),
	).WithTheme(planboardHuhTheme()).WithShowHelp(false)
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/notify"
)

var levelGlyphs = map[notify.Level]string{
	notify.LevelSuccess: "✔",
	notify.LevelInfo:    "ℹ",
	notify.LevelWarning: "!",
	notify.LevelDanger:  "✖",
}

// FormatToast renders one notification line.
func FormatToast(t notify.Toast) string {
	glyph, ok := levelGlyphs[t.Level]
	if !ok {
		glyph = levelGlyphs[notify.LevelInfo]
	}
	return LevelStyle(t.Level).Render(glyph) + " " + t.Message
}

// FormatToasts renders the stack oldest first, one per line.
func FormatToasts(toasts []notify.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, len(toasts))
	for i, t := range toasts {
		lines[i] = FormatToast(t)
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatSync summarizes a snapshot refresh.
func FormatSync(tasks, plannings, skipped int, at time.Time) string {
	line := fmt.Sprintf("%s Synced %s and %s",
		StyleGreen.Render("✔"), Plural(tasks, "task"), Plural(plannings, "planning"))
	if skipped > 0 {
		line += StyleYellow.Render(fmt.Sprintf(" (%d skipped)", skipped))
	}
	return line + Dim(" at "+at.Local().Format("15:04:05")) + "\n"
}

// FormatHealth renders the server health line.
func FormatHealth(baseURL, status string) string {
	style := StyleGreen
	if status != "ok" {
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s %s\n", style.Render("●"), Bold(baseURL), Dim(status))
}

package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by every command.
type App struct {
	Board   service.BoardService
	Tasks   service.TaskService
	Notices *notify.Center

	// Days is the default width of the board window.
	Days    int
	BaseURL string

	// IsInteractive reports whether the bare command should open the board
	// TUI. Nil means never.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) notices() *notify.Center {
	if a.Notices == nil {
		a.Notices = notify.NewCenter(notify.DefaultConfig(), nil)
	}
	return a.Notices
}

func (a *App) days() int {
	if a.Days > 0 {
		return a.Days
	}
	return 4
}

// NewRootCmd creates the top-level "planboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planboard",
		Short:         "Calendar board for task plannings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoardTUI(app, app.now())
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSyncCmd(app),
		newBoardCmd(app),
		newMoveCmd(app),
		newActCmd(app),
		newDuplicateCmd(app),
		newTimeCmd(app),
		newTaskCmd(app),
		newHealthCmd(app),
		newTUICmd(app),
	)

	return root
}

// printNotices flushes the queued toasts to w.
func printNotices(w io.Writer, app *App) {
	io.WriteString(w, formatter.FormatToasts(app.notices().Drain()))
}

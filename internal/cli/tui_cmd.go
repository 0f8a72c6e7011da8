package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var start time.Time

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoardTUI(app, start)
		},
	}

	today, _ := parseDay("today", app.now())
	cmd.Flags().Var(newDateValue(&start, today, app.now), "start", "first day of the window")
	return cmd
}

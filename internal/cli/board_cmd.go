package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local board snapshot from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Board.Sync(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSync(res.Tasks, res.Plannings, res.Skipped, res.At))
			return nil
		},
	}
}

func newBoardCmd(app *App) *cobra.Command {
	var (
		start time.Time
		days  int
		table bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the plannings of a window of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			board, err := app.Board.Load(context.Background(), start, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if table {
				fmt.Fprint(out, formatter.FormatPlanningTable(board))
			} else {
				fmt.Fprintln(out, formatter.FormatBoard(board, formatter.BoardOptions{Today: app.now()}))
			}
			printLastSync(out, app)
			return nil
		},
	}

	today, _ := parseDay("today", app.now())
	cmd.Flags().Var(newDateValue(&start, today, app.now), "start", "first day of the window (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().IntVar(&days, "days", app.days(), "number of days shown")
	cmd.Flags().BoolVar(&table, "table", false, "list plannings as a table")

	return cmd
}

func printLastSync(w io.Writer, app *App) {
	at, ok := app.Board.LastSync(context.Background())
	if !ok {
		fmt.Fprintln(w, formatter.Dim("Never synced. Run `planboard sync` to fetch plannings."))
		return
	}
	fmt.Fprintln(w, formatter.Dim("Last sync "+at.Local().Format("2006-01-02 15:04")))
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const detailWidth = 80

func newTaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "task <task-id>",
		Short: "Show a task with its project, last notes and next plannings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Tasks.Detail(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskDetail(detail, detailWidth))
			return nil
		},
	}
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the planning server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Tasks.Health(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHealth(app.BaseURL, st.Status))
			return nil
		},
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/spf13/cobra"
)

type gestureFunc func(ctx context.Context, c *calendar.Controller) (*calendar.Outcome, error)

// runGesture loads the board around planning id plus any target dates,
// performs the gesture, persists its outcome and prints the toasts.
func runGesture(cmd *cobra.Command, app *App, id string, targets []string, gesture gestureFunc) error {
	ctx := context.Background()

	item, err := app.Board.Planning(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("planning %s is not in the local snapshot, run `planboard sync` first", id)
	}
	if err != nil {
		return err
	}
	day, err := time.Parse(domain.DateLayout, item.CurrentDate)
	if err != nil {
		return fmt.Errorf("planning %s: %w", id, err)
	}
	board, err := app.Board.Load(ctx, day, 1, targets...)
	if err != nil {
		return err
	}

	ctrl := app.Board.Controller(board, app.notices())
	out, gestureErr := gesture(ctx, ctrl)
	if gestureErr == nil {
		if err := app.Board.Apply(ctx, out); err != nil {
			printNotices(cmd.OutOrStdout(), app)
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	printNotices(cmd.OutOrStdout(), app)
	return gestureErr
}

// drop drags planning id onto zone.
func drop(id string, zone *calendar.Zone) gestureFunc {
	return func(ctx context.Context, c *calendar.Controller) (*calendar.Outcome, error) {
		if err := c.DragStart(id); err != nil {
			return nil, err
		}
		c.DragEnter(zone)
		return c.Drop(ctx, zone)
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <planning-id> <date>",
		Short: "Move a planning to another day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDay(args[1], app.now())
			if err != nil {
				return err
			}
			target := date.Format(domain.DateLayout)
			return runGesture(cmd, app, args[0], []string{target}, drop(args[0], calendar.DayZone(target)))
		},
	}
}

func newActCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "act <planning-id> <action> [priority]",
		Short: "Drop a planning on an action: delete, priority, complete, complete-task, in-progress",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := domain.Action(args[1])
			zone := calendar.ActionZone(action)
			if action == domain.ActionPriority {
				if len(args) < 3 {
					return fmt.Errorf("the priority action needs a value from %d to %d", domain.MinPriority, domain.MaxPriority)
				}
				p, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("%w %q", domain.ErrInvalidPriority, args[2])
				}
				zone = calendar.PriorityZone(p)
			} else if len(args) == 3 {
				return fmt.Errorf("only the priority action takes a value")
			}
			return runGesture(cmd, app, args[0], nil, drop(args[0], zone))
		},
	}
}

func newDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <planning-id> <date>",
		Short: "Copy a planning onto another day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDay(args[1], app.now())
			if err != nil {
				return err
			}
			target := date.Format(domain.DateLayout)
			return runGesture(cmd, app, args[0], []string{target}, drop(args[0], calendar.DuplicateZone(target)))
		},
	}
}

func newTimeCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "time <planning-id>",
		Short: "Set the start and end hours of a planning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return runGesture(cmd, app, id, nil, func(ctx context.Context, c *calendar.Controller) (*calendar.Outcome, error) {
				if err := c.Editor().Open(id, 0, 0); err != nil {
					return nil, err
				}
				return c.Editor().Save(ctx, start, end)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start hour (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end hour (HH:MM)")
	return cmd
}

package calendar

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

// DropOnDay moves the dragged planning to the zone's date. Dropping on the
// planning's own date does nothing.
func (c *Controller) DropOnDay(ctx context.Context, z *Zone) (*Outcome, error) {
	c.DragLeave(z)
	defer c.resetDrag()

	if !c.session.Active() || z.Date == "" || z.Date == c.session.OriginalDate {
		return nil, nil
	}
	if _, ok := c.board.List(z.Date); !ok {
		return nil, c.fail(ctx, "move planning", fmt.Errorf("%w: %s", ErrUnknownDay, ListID(z.Date)))
	}

	item := c.session.Item
	wasDone := item.Done
	if _, err := c.client.PatchPlanning(ctx, item.ID, contract.MovePatch(z.Date, wasDone)); err != nil {
		return nil, c.fail(ctx, "move planning", err)
	}

	if err := c.board.Move(item, z.Date, undo); err != nil {
		return nil, c.fail(ctx, "move planning", err)
	}
	return c.succeed(ctx, &Outcome{
		Notice:  "Planning moved successfully",
		Touched: []*domain.PlanningItem{item},
	}), nil
}

// undo clears the done flag of a moved planning.
func undo(item *domain.PlanningItem) { item.Done = false }

// DropOnAction applies a sidebar action to the dragged planning.
func (c *Controller) DropOnAction(ctx context.Context, z *Zone) (*Outcome, error) {
	c.DragLeave(z)
	defer c.resetDrag()

	if !c.session.Active() {
		return nil, nil
	}
	item := c.session.Item

	switch z.Action {
	case domain.ActionDelete:
		return c.deletePlanning(ctx, item)
	case domain.ActionPriority:
		return c.setPriority(ctx, item, z.Priority)
	case domain.ActionComplete:
		return c.toggleDone(ctx, item)
	case domain.ActionCompleteTask:
		return c.toggleTaskState(ctx, item, domain.TaskCompleted)
	case domain.ActionInProgress:
		return c.toggleTaskState(ctx, item, domain.TaskInProgress)
	default:
		c.logger.WarnContext(ctx, "unknown action", "action", z.Action)
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, z.Action)
	}
}

func (c *Controller) deletePlanning(ctx context.Context, item *domain.PlanningItem) (*Outcome, error) {
	if err := c.client.DeletePlanning(ctx, item.ID); err != nil {
		return nil, c.fail(ctx, "delete planning", err)
	}
	if _, err := c.board.Remove(item.ID); err != nil {
		return nil, c.fail(ctx, "delete planning", err)
	}
	return c.succeed(ctx, &Outcome{
		Notice:  "Planning deleted successfully",
		Removed: []string{item.ID},
	}), nil
}

func (c *Controller) setPriority(ctx context.Context, item *domain.PlanningItem, priority int) (*Outcome, error) {
	if priority < domain.MinPriority || priority > domain.MaxPriority {
		return nil, c.fail(ctx, "set priority", fmt.Errorf("%w %d", domain.ErrInvalidPriority, priority))
	}
	if _, err := c.client.PatchPlanning(ctx, item.ID, contract.PriorityPatch(priority)); err != nil {
		return nil, c.fail(ctx, "set priority", err)
	}
	item.Priority = priority
	c.board.norm.Normalize(item)
	c.resort(item)
	return c.succeed(ctx, &Outcome{
		Notice:  "Planning priority updated successfully",
		Touched: []*domain.PlanningItem{item},
	}), nil
}

func (c *Controller) toggleDone(ctx context.Context, item *domain.PlanningItem) (*Outcome, error) {
	done := !item.Done
	if _, err := c.client.PatchPlanning(ctx, item.ID, contract.DonePatch(done)); err != nil {
		return nil, c.fail(ctx, "toggle planning done", err)
	}
	item.Done = done
	c.resort(item)

	notice := "Planning unmarked as completed"
	if done {
		notice = "Planning marked as completed"
	}
	return c.succeed(ctx, &Outcome{Notice: notice, Touched: []*domain.PlanningItem{item}}), nil
}

// toggleTaskState flips the parent task between target and pending. The
// completed and in-progress toggles are mutually exclusive: applying one to
// a task sitting in the other state clears it back to pending.
func (c *Controller) toggleTaskState(ctx context.Context, item *domain.PlanningItem, target domain.TaskState) (*Outcome, error) {
	if item.TaskID == "" {
		return nil, c.fail(ctx, "toggle task state", ErrMissingTaskID)
	}
	next := nextTaskState(item.TaskState, target)
	if _, err := c.client.PatchTaskState(ctx, item.TaskID, next); err != nil {
		return nil, c.fail(ctx, "toggle task state", err)
	}

	touched := c.board.ItemsForTask(item.TaskID)
	if len(touched) == 0 {
		touched = []*domain.PlanningItem{item}
	}
	for _, p := range touched {
		p.TaskState = next
	}
	sorted := make(map[string]bool)
	for _, p := range touched {
		if sorted[p.CurrentDate] {
			continue
		}
		sorted[p.CurrentDate] = true
		c.resort(p)
	}

	return c.succeed(ctx, &Outcome{Notice: taskStateNotice(next), Touched: touched}), nil
}

func nextTaskState(current, target domain.TaskState) domain.TaskState {
	switch current {
	case domain.TaskCompleted, domain.TaskInProgress:
		return domain.TaskPending
	default:
		return target
	}
}

func taskStateNotice(s domain.TaskState) string {
	switch s {
	case domain.TaskCompleted:
		return "Task marked as done"
	case domain.TaskInProgress:
		return "Task marked as in progress"
	default:
		return "Task marked as pending"
	}
}

// resort restores canonical order in the list holding item.
func (c *Controller) resort(item *domain.PlanningItem) {
	if l, ok := c.board.ListOf(item); ok {
		l.Sort()
	}
}

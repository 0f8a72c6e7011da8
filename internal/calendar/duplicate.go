package calendar

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

// DropOnDuplicate creates a copy of the dragged planning on the zone's date.
// The dragged planning stays where it is.
func (c *Controller) DropOnDuplicate(ctx context.Context, z *Zone) (*Outcome, error) {
	c.DragLeave(z)
	defer c.resetDrag()

	if !c.session.Active() {
		return nil, nil
	}
	src := c.session.Item
	if src.TaskID == "" {
		return nil, c.fail(ctx, "duplicate planning", ErrMissingTaskID)
	}
	if _, ok := c.board.List(z.Date); !ok {
		return nil, c.fail(ctx, "duplicate planning", fmt.Errorf("%w: %s", ErrUnknownDay, ListID(z.Date)))
	}

	priority, ok := src.PlanningPriority()
	if !ok {
		priority = c.duplicatePriority
	}
	rec, err := c.client.CreatePlanning(ctx, contract.PlanningCreate{
		TaskID:      contract.ID(src.TaskID),
		PlannedDate: z.Date,
		Priority:    priority,
	})
	if err != nil {
		return nil, c.fail(ctx, "duplicate planning", err)
	}
	if rec == nil || rec.ID == "" {
		return nil, c.fail(ctx, "duplicate planning", ErrMissingID)
	}

	created := synthesizePlanning(*rec, src, z.Date, priority)
	if err := c.board.Add(created); err != nil {
		return nil, c.fail(ctx, "duplicate planning", err)
	}
	return c.succeed(ctx, &Outcome{
		Notice:  "Planning duplicated successfully",
		Touched: []*domain.PlanningItem{created},
	}), nil
}

// synthesizePlanning builds the board item for a created planning.
//
// Compatibility shim: when the create response omits the nested task, the
// task fields are rebuilt from the dragged item's cached title, state and
// task priority. Drop this once the endpoint always returns the task.
func synthesizePlanning(rec contract.PlanningRecord, src *domain.PlanningItem, date string, priority int) *domain.PlanningItem {
	fallback := &contract.TaskRecord{
		ID:    contract.ID(src.TaskID),
		Title: src.Title,
		State: string(src.TaskState),
	}
	if src.TaskPriority > 0 {
		p := src.TaskPriority
		fallback.Priority = &p
	}

	item := contract.ToPlanning(rec, fallback)
	item.TaskID = domain.CoalesceStr(item.TaskID, src.TaskID)
	item.CurrentDate = domain.CoalesceStr(item.CurrentDate, date)
	item.Title = domain.CoalesceStr(item.Title, src.Title)
	item.Priority = domain.IntFromPtrWithDefault(priority, rec.Priority)
	return &item
}

package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

// ClickTarget classifies a click while the time editor is open.
type ClickTarget int

const (
	ClickElsewhere ClickTarget = iota
	ClickInsideMenu
	ClickOnPlanning
)

// TimeEditor is the context-menu popup editing one planning's hours. At
// most one planning is bound at a time; Open replaces any earlier binding
// and Close removes it.
type TimeEditor struct {
	c       *Controller
	binding *editorBinding
}

type editorBinding struct {
	planningID string
	x, y       int
	start, end string
}

// Open binds the editor to planning id, positioned next to the pointer.
func (e *TimeEditor) Open(id string, x, y int) error {
	e.Close()
	item, ok := e.c.board.Item(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlanning, id)
	}
	e.binding = &editorBinding{
		planningID: id,
		x:          x + 5,
		y:          y + 5,
		start:      item.StartTime,
		end:        item.EndTime,
	}
	return nil
}

func (e *TimeEditor) IsOpen() bool { return e.binding != nil }

// PlanningID returns the bound planning, or "" when closed.
func (e *TimeEditor) PlanningID() string {
	if e.binding == nil {
		return ""
	}
	return e.binding.planningID
}

func (e *TimeEditor) Position() (x, y int) {
	if e.binding == nil {
		return 0, 0
	}
	return e.binding.x, e.binding.y
}

// Values returns the hours the editor was opened with.
func (e *TimeEditor) Values() (start, end string) {
	if e.binding == nil {
		return "", ""
	}
	return e.binding.start, e.binding.end
}

// Close hides the editor and drops its binding.
func (e *TimeEditor) Close() {
	e.binding = nil
}

func (e *TimeEditor) Cancel() {
	e.Close()
}

// HandleClick dismisses the editor on a click outside both the menu and any
// planning. It reports whether the editor was closed.
func (e *TimeEditor) HandleClick(target ClickTarget) bool {
	if e.binding == nil || target != ClickElsewhere {
		return false
	}
	e.Close()
	return true
}

// Save sends the new hours of the bound planning. Both values empty just
// closes the editor. Invalid values keep the editor open.
func (e *TimeEditor) Save(ctx context.Context, start, end string) (*Outcome, error) {
	b := e.binding
	if b == nil {
		return nil, ErrEditorClosed
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		e.Close()
		return nil, nil
	}

	var err error
	if start, err = normalizeOptionalHour(start); err != nil {
		return nil, e.c.fail(ctx, "update time", err)
	}
	if end, err = normalizeOptionalHour(end); err != nil {
		return nil, e.c.fail(ctx, "update time", err)
	}

	defer e.Close()

	item, ok := e.c.board.Item(b.planningID)
	if !ok {
		return nil, e.c.fail(ctx, "update time", fmt.Errorf("%w: %s", ErrUnknownPlanning, b.planningID))
	}
	if _, err := e.c.client.PatchPlanning(ctx, item.ID, contract.HoursPatch(start, end)); err != nil {
		return nil, e.c.fail(ctx, "update time", err)
	}

	item.StartTime, item.EndTime = start, end
	e.c.resort(item)
	return e.c.succeed(ctx, &Outcome{
		Notice:  "Time updated successfully",
		Touched: []*domain.PlanningItem{item},
	}), nil
}

func normalizeOptionalHour(h string) (string, error) {
	if h == "" {
		return "", nil
	}
	return domain.NormalizeHour(h)
}

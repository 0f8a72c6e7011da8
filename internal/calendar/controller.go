package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
)

// Controller owns a board, its drag session and its time editor, and turns
// gestures into confirmed server mutations.
type Controller struct {
	board    *Board
	client   SyncClient
	notifier Notifier
	logger   *slog.Logger
	session  DragSession
	editor   *TimeEditor

	duplicatePriority int
}

type Option func(*Controller)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDuplicatePriority overrides the priority given to duplicates of
// plannings without a usable one.
func WithDuplicatePriority(p int) Option {
	return func(c *Controller) {
		if p >= domain.MinPriority && p <= domain.MaxPriority {
			c.duplicatePriority = p
		}
	}
}

func NewController(board *Board, client SyncClient, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		board:             board,
		client:            client,
		notifier:          notifier,
		logger:            slog.New(slog.DiscardHandler),
		duplicatePriority: domain.DefaultDuplicatePriority,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.editor = &TimeEditor{c: c}
	return c
}

func (c *Controller) Board() *Board { return c.board }

// Session returns a snapshot of the drag session.
func (c *Controller) Session() DragSession { return c.session }

// Editor returns the time editor.
func (c *Controller) Editor() *TimeEditor { return c.editor }

// DragStart begins dragging planning id.
func (c *Controller) DragStart(id string) error {
	if c.session.Active() {
		return ErrDragInProgress
	}
	item, ok := c.board.Item(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlanning, id)
	}
	c.session.start(item)
	c.board.norm.Normalize(item)
	return nil
}

// DragEnd ends the gesture without a drop.
func (c *Controller) DragEnd() {
	c.resetDrag()
}

// DragEnter applies hover styling to z.
func (c *Controller) DragEnter(z *Zone) {
	z.hover = true
	if z.Kind == ZoneDay {
		if l, ok := c.board.List(z.Date); ok {
			l.hover = true
		}
	}
}

// DragLeave removes hover styling from z.
func (c *Controller) DragLeave(z *Zone) {
	z.hover = false
	if z.Kind == ZoneDay {
		if l, ok := c.board.List(z.Date); ok {
			l.hover = false
		}
	}
}

// Drop dispatches to the handler of the zone kind.
func (c *Controller) Drop(ctx context.Context, z *Zone) (*Outcome, error) {
	switch z.Kind {
	case ZoneDay:
		return c.DropOnDay(ctx, z)
	case ZoneDuplicate:
		return c.DropOnDuplicate(ctx, z)
	default:
		return c.DropOnAction(ctx, z)
	}
}

func (c *Controller) resetDrag() {
	item := c.session.Item
	c.session.clear()
	if item != nil && item.Bound {
		c.board.norm.Normalize(item)
	}
}

// succeed records a success toast.
func (c *Controller) succeed(ctx context.Context, out *Outcome) *Outcome {
	c.notifier.Notify(ctx, notify.LevelSuccess, out.Notice)
	return out
}

// fail logs err and surfaces it as one error toast.
func (c *Controller) fail(ctx context.Context, op string, err error) error {
	c.logger.ErrorContext(ctx, "calendar_action_failed", "op", op, "error", err)
	c.notifier.Notify(ctx, notify.LevelDanger, "Error: "+userMessage(err))
	return fmt.Errorf("%s: %w", op, err)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidHour     = errors.New("invalid hour")
	ErrInvalidPriority = errors.New("invalid priority")
)

// PlanningItem is one scheduled occurrence of a task on a given date.
type PlanningItem struct {
	ID          string
	TaskID      string
	CurrentDate string
	StartTime   string // "HH:MM", empty when unscheduled
	EndTime     string
	Priority    int // 0 = unset
	Done        bool

	// Cached parent task fields.
	TaskState    TaskState
	TaskPriority int // 0 = no badge
	Title        string

	// Presentation flags maintained by the calendar board.
	Dragging  bool
	Draggable bool
	Bound     bool
}

// TaskCompleted reports whether the parent task is completed.
func (p *PlanningItem) TaskCompleted() bool {
	return p.TaskState == TaskCompleted
}

// PlanningPriority returns the planning priority when it lies in the
// accepted 1-5 range.
func (p *PlanningItem) PlanningPriority() (int, bool) {
	if p.Priority < MinPriority || p.Priority > MaxPriority {
		return 0, false
	}
	return p.Priority, true
}

// Validate checks the fields a server-rendered planning must carry.
func (p *PlanningItem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("planning id is required")
	}
	if !ValidDate(p.CurrentDate) {
		return fmt.Errorf("planning %s: %w %q", p.ID, ErrInvalidDate, p.CurrentDate)
	}
	for _, h := range []string{p.StartTime, p.EndTime} {
		if h == "" {
			continue
		}
		if _, err := NormalizeHour(h); err != nil {
			return fmt.Errorf("planning %s: %w", p.ID, err)
		}
	}
	if p.Priority < 0 || p.Priority > MaxPriority {
		return fmt.Errorf("planning %s: %w %d", p.ID, ErrInvalidPriority, p.Priority)
	}
	return nil
}

// Clone returns a copy with the presentation flags reset.
func (p *PlanningItem) Clone() *PlanningItem {
	c := *p
	c.Dragging = false
	c.Draggable = false
	c.Bound = false
	return &c
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeHour converts "9:05", "09:05" or "09:05:00" into "09:05".
func NormalizeHour(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > len("15:04") && strings.Count(s, ":") == 2 {
		s = s[:strings.LastIndex(s, ":")]
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidHour, s)
	}
	return t.Format(HourLayout), nil
}

package calendar

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/planboard/internal/domain"
)

const (
	ClassItem     = "planning-item"
	ClassDone     = "planning-done"
	ClassDragging = "dragging"
)

// StateIcon is the marker drawn after a planning title for its task state.
type StateIcon string

const (
	IconNone    StateIcon = ""
	IconCheck   StateIcon = "check"
	IconSpinner StateIcon = "spinner"
)

// View is the canonical visual representation of a planning item.
type View struct {
	Classes     []string
	Title       string
	TimeText    string
	StateIcon   StateIcon
	TaskBadge   int // 0 when no badge is drawn
	PriorityBar string
	Priority    int
	Draggable   bool
}

func (v View) HasClass(c string) bool {
	return slices.Contains(v.Classes, c)
}

func (v View) equal(o View) bool {
	return slices.Equal(v.Classes, o.Classes) &&
		v.Title == o.Title &&
		v.TimeText == o.TimeText &&
		v.StateIcon == o.StateIcon &&
		v.TaskBadge == o.TaskBadge &&
		v.PriorityBar == o.PriorityBar &&
		v.Draggable == o.Draggable
}

// Render projects an item onto its view. It reads nothing but the item.
func Render(item *domain.PlanningItem) View {
	v := View{
		Classes:   []string{ClassItem},
		Title:     item.Title,
		TimeText:  FormatRange(item.StartTime, item.EndTime),
		Draggable: item.Draggable,
	}
	// The done class follows the planning flag only, never the task state.
	if item.Done {
		v.Classes = append(v.Classes, ClassDone)
	}
	if item.Dragging {
		v.Classes = append(v.Classes, ClassDragging)
	}

	switch item.TaskState {
	case domain.TaskCompleted:
		v.StateIcon = IconCheck
	case domain.TaskInProgress:
		v.StateIcon = IconSpinner
	}

	if item.TaskPriority >= domain.MinPriority && item.TaskPriority <= domain.MaxPriority {
		v.TaskBadge = item.TaskPriority
	}

	v.Priority = barPriority(item.Priority)
	v.PriorityBar = fmt.Sprintf("priority-fill priority-%d", v.Priority)
	return v
}

// barPriority maps the planning priority to the bar fill level, 0 when unset
// or out of range.
func barPriority(p int) int {
	if p < 0 || p > domain.MaxPriority {
		return 0
	}
	return p
}

// Normalizer caches the last rendered view of every item so repeated
// normalization is free of churn.
type Normalizer struct {
	views   map[string]View
	rebuilt int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{views: make(map[string]View)}
}

// Normalize re-renders item and reports whether its view changed. Calling it
// again without touching the item returns false.
func (n *Normalizer) Normalize(item *domain.PlanningItem) bool {
	next := Render(item)
	if prev, ok := n.views[item.ID]; ok && prev.equal(next) {
		return false
	}
	n.views[item.ID] = next
	n.rebuilt++
	return true
}

// View returns the cached view of id.
func (n *Normalizer) View(id string) (View, bool) {
	v, ok := n.views[id]
	return v, ok
}

// Forget drops the cached view of a removed item.
func (n *Normalizer) Forget(id string) {
	delete(n.views, id)
}

// Rebuilds counts how many views have been (re)built.
func (n *Normalizer) Rebuilds() int {
	return n.rebuilt
}

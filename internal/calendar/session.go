package calendar

import "github.com/alexanderramin/planboard/internal/domain"

// DragSession tracks the planning currently being dragged. Only one drag is
// active at a time.
type DragSession struct {
	Item         *domain.PlanningItem
	PlanningID   string
	OriginalDate string
}

// Active reports whether an item is being dragged.
func (s DragSession) Active() bool {
	return s.Item != nil
}

func (s *DragSession) start(item *domain.PlanningItem) {
	item.Dragging = true
	s.Item = item
	s.PlanningID = item.ID
	s.OriginalDate = item.CurrentDate
}

// clear drops every reference held by the session.
func (s *DragSession) clear() {
	if s.Item != nil {
		s.Item.Dragging = false
	}
	*s = DragSession{}
}

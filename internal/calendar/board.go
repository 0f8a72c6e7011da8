package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

const (
	PlaceholderText      = "No plannings for this day."
	PlaceholderHoverText = "Drop here to move planning"
)

// ListID returns the container id of the day list for date.
func ListID(date string) string {
	return "plannings-" + date
}

// DayList is the ordered collection of plannings under one calendar date.
type DayList struct {
	Date  string
	board *Board
	items []*domain.PlanningItem
	hover bool
}

func (l *DayList) ID() string { return ListID(l.Date) }

// Items returns the list in display order.
func (l *DayList) Items() []*domain.PlanningItem {
	out := make([]*domain.PlanningItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *DayList) Len() int { return len(l.items) }

// ShowsPlaceholder reports whether the list renders its empty-day
// placeholder. It is shown exactly when the list has no items.
func (l *DayList) ShowsPlaceholder() bool {
	return len(l.items) == 0
}

// Placeholder returns the placeholder text, or "" when it is hidden.
func (l *DayList) Placeholder() string {
	if !l.ShowsPlaceholder() {
		return ""
	}
	if l.hover {
		return PlaceholderHoverText
	}
	return PlaceholderText
}

func (l *DayList) Hovered() bool { return l.hover }

// Sort normalizes and binds every item, then puts the list in canonical
// order.
func (l *DayList) Sort() {
	for _, item := range l.items {
		l.board.norm.Normalize(item)
		l.board.bind(item)
	}
	CanonicalSort(l.items)
}

func (l *DayList) indexOf(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (l *DayList) detach(id string) *domain.PlanningItem {
	i := l.indexOf(id)
	if i < 0 {
		return nil
	}
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return item
}

// Board is the in-memory calendar: one day list per date plus an index of
// every bound planning by id.
type Board struct {
	start time.Time
	days  int
	dates []string
	lists map[string]*DayList
	index map[string]*domain.PlanningItem
	norm  *Normalizer
}

// NewBoard creates a board whose visible window is days dates starting at
// start.
func NewBoard(start time.Time, days int) *Board {
	if days <= 0 {
		days = 1
	}
	b := &Board{
		start: start,
		days:  days,
		lists: make(map[string]*DayList),
		index: make(map[string]*domain.PlanningItem),
		norm:  NewNormalizer(),
	}
	for i := 0; i < days; i++ {
		b.EnsureList(start.AddDate(0, 0, i).Format(domain.DateLayout))
	}
	return b
}

// Start returns the first visible date.
func (b *Board) Start() time.Time { return b.start }

// Days returns the size of the visible window.
func (b *Board) Days() int { return b.days }

// Window returns the visible dates in order.
func (b *Board) Window() []string {
	out := make([]string, 0, b.days)
	for i := 0; i < b.days; i++ {
		out = append(out, b.start.AddDate(0, 0, i).Format(domain.DateLayout))
	}
	return out
}

// Dates returns every date with a list, in creation order.
func (b *Board) Dates() []string {
	out := make([]string, len(b.dates))
	copy(out, b.dates)
	return out
}

// EnsureList returns the list for date, creating it when missing. Lists
// outside the window let the board hold the source of a move that started
// off-screen.
func (b *Board) EnsureList(date string) *DayList {
	if l, ok := b.lists[date]; ok {
		return l
	}
	l := &DayList{Date: date, board: b}
	b.lists[date] = l
	b.dates = append(b.dates, date)
	return l
}

func (b *Board) List(date string) (*DayList, bool) {
	l, ok := b.lists[date]
	return l, ok
}

// Item looks up a bound planning.
func (b *Board) Item(id string) (*domain.PlanningItem, bool) {
	item, ok := b.index[id]
	return item, ok
}

// View returns the last normalized view of a planning.
func (b *Board) View(id string) (View, bool) {
	return b.norm.View(id)
}

// Normalizer exposes the view cache.
func (b *Board) Normalizer() *Normalizer { return b.norm }

// ListOf returns the list currently holding item.
func (b *Board) ListOf(item *domain.PlanningItem) (*DayList, bool) {
	l, ok := b.lists[item.CurrentDate]
	if !ok || l.indexOf(item.ID) < 0 {
		return nil, false
	}
	return l, true
}

// Load appends items to their day lists and sorts every touched list once.
// Items dated outside the board are skipped and returned.
func (b *Board) Load(items []*domain.PlanningItem) (skipped []*domain.PlanningItem) {
	touched := make(map[string]*DayList)
	for _, item := range items {
		l, ok := b.lists[item.CurrentDate]
		if !ok {
			skipped = append(skipped, item)
			continue
		}
		l.items = append(l.items, item)
		touched[item.CurrentDate] = l
	}
	for _, date := range b.dates {
		if l, ok := touched[date]; ok {
			l.Sort()
		}
	}
	return skipped
}

// Add appends item to its day list and restores canonical order.
func (b *Board) Add(item *domain.PlanningItem) error {
	l, ok := b.lists[item.CurrentDate]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDay, ListID(item.CurrentDate))
	}
	if _, exists := b.index[item.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlanning, item.ID)
	}
	l.items = append(l.items, item)
	l.Sort()
	return nil
}

// Move relocates item to date: detached from its list, dated, appended to
// the destination, and both lists re-sorted. Edits run once both lists are
// known, before the item is normalized; a failed move leaves item untouched.
func (b *Board) Move(item *domain.PlanningItem, date string, edits ...func(*domain.PlanningItem)) error {
	dst, ok := b.lists[date]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDay, ListID(date))
	}
	src, ok := b.ListOf(item)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlanning, item.ID)
	}
	src.detach(item.ID)
	item.CurrentDate = date
	item.Dragging = false
	for _, edit := range edits {
		edit(item)
	}
	b.norm.Normalize(item)
	dst.items = append(dst.items, item)
	dst.Sort()
	src.Sort()
	return nil
}

// Remove deletes a planning from its list and the index.
func (b *Board) Remove(id string) (*domain.PlanningItem, error) {
	item, ok := b.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlanning, id)
	}
	if l, ok := b.ListOf(item); ok {
		l.detach(id)
	}
	delete(b.index, id)
	b.norm.Forget(id)
	item.Bound = false
	return item, nil
}

// ItemsForTask returns every bound planning of a task.
func (b *Board) ItemsForTask(taskID string) []*domain.PlanningItem {
	var out []*domain.PlanningItem
	for _, date := range b.dates {
		for _, item := range b.lists[date].items {
			if item.TaskID == taskID {
				out = append(out, item)
			}
		}
	}
	return out
}

// bind marks item draggable and registers it, once.
func (b *Board) bind(item *domain.PlanningItem) {
	if item.Bound {
		return
	}
	item.Draggable = true
	b.index[item.ID] = item
	item.Bound = true
	b.norm.Normalize(item)
}

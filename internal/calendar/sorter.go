package calendar

import (
	"sort"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Less orders two plannings of the same day by the canonical rules:
// 1. Planning done: not done first
// 2. Task completed: not completed first
// 3. Start minutes ascending (unscheduled last)
// 4. End minutes ascending (open-ended last)
// 5. Planning priority descending
func Less(a, b *domain.PlanningItem) bool {
	if a.Done != b.Done {
		return !a.Done
	}
	if a.TaskCompleted() != b.TaskCompleted() {
		return !a.TaskCompleted()
	}

	ra := ParseRange(FormatRange(a.StartTime, a.EndTime))
	rb := ParseRange(FormatRange(b.StartTime, b.EndTime))
	if ra.Start != rb.Start {
		return ra.Start < rb.Start
	}
	if ra.End != rb.End {
		return ra.End < rb.End
	}

	return barPriority(a.Priority) > barPriority(b.Priority)
}

// CanonicalSort sorts items in place, keeping the relative order of ties.
func CanonicalSort(items []*domain.PlanningItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}

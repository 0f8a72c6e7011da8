package calendar

import "github.com/alexanderramin/planboard/internal/domain"

type ZoneKind string

const (
	ZoneDay       ZoneKind = "day"
	ZoneAction    ZoneKind = "action"
	ZoneDuplicate ZoneKind = "duplicate"
)

// Zone is a drop target.
type Zone struct {
	Kind     ZoneKind
	Date     string        // day and duplicate zones
	Action   domain.Action // action zones
	Priority int           // priority action zones
	hover    bool
}

func DayZone(date string) *Zone {
	return &Zone{Kind: ZoneDay, Date: date}
}

func ActionZone(action domain.Action) *Zone {
	return &Zone{Kind: ZoneAction, Action: action}
}

func PriorityZone(priority int) *Zone {
	return &Zone{Kind: ZoneAction, Action: domain.ActionPriority, Priority: priority}
}

func DuplicateZone(date string) *Zone {
	return &Zone{Kind: ZoneDuplicate, Date: date}
}

// Hovered reports whether a drag is currently over the zone.
func (z *Zone) Hovered() bool { return z.hover }

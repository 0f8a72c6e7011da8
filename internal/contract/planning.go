package contract

import "encoding/json"

// PlanningRecord is the server representation of a task planning.
type PlanningRecord struct {
	ID          ID          `json:"id"`
	TaskID      ID          `json:"task_id"`
	PlannedDate string      `json:"planned_date"`
	StartHour   *string     `json:"start_hour"`
	EndHour     *string     `json:"end_hour"`
	Priority    *int        `json:"priority"`
	Done        bool        `json:"done"`
	Task        *TaskRecord `json:"task,omitempty"`
}

// PlanningCreate is the body of POST /tasks/task_planning/.
type PlanningCreate struct {
	TaskID      ID     `json:"task_id"`
	PlannedDate string `json:"planned_date"`
	Priority    int    `json:"priority"`
}

// PlanningPatch is a partial update of a planning. Only set fields are sent.
// When SetHours is true both start_hour and end_hour are sent, as null when
// the corresponding pointer is nil.
type PlanningPatch struct {
	PlannedDate *string
	Done        *bool
	Priority    *int
	SetHours    bool
	StartHour   *string
	EndHour     *string
}

func (p PlanningPatch) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4)
	if p.PlannedDate != nil {
		m["planned_date"] = *p.PlannedDate
	}
	if p.Done != nil {
		m["done"] = *p.Done
	}
	if p.Priority != nil {
		m["priority"] = *p.Priority
	}
	if p.SetHours {
		m["start_hour"] = p.StartHour
		m["end_hour"] = p.EndHour
	}
	return json.Marshal(m)
}

// MovePatch moves a planning to date. A done planning is un-completed by
// the move.
func MovePatch(date string, wasDone bool) PlanningPatch {
	p := PlanningPatch{PlannedDate: &date}
	if wasDone {
		f := false
		p.Done = &f
	}
	return p
}

func PriorityPatch(priority int) PlanningPatch {
	return PlanningPatch{Priority: &priority}
}

func DonePatch(done bool) PlanningPatch {
	return PlanningPatch{Done: &done}
}

// HoursPatch sets both hours; empty strings are sent as null.
func HoursPatch(start, end string) PlanningPatch {
	p := PlanningPatch{SetHours: true}
	if start != "" {
		p.StartHour = &start
	}
	if end != "" {
		p.EndHour = &end
	}
	return p
}

package contract

import (
	"github.com/alexanderramin/planboard/internal/domain"
)

// ToPlanning converts a server planning into a board item. task supplies the
// cached parent fields and may be nil; rec.Task is used when present.
func ToPlanning(rec PlanningRecord, task *TaskRecord) domain.PlanningItem {
	if rec.Task != nil {
		task = rec.Task
	}
	item := domain.PlanningItem{
		ID:          rec.ID.String(),
		TaskID:      rec.TaskID.String(),
		CurrentDate: rec.PlannedDate,
		StartTime:   hourOrEmpty(rec.StartHour),
		EndTime:     hourOrEmpty(rec.EndHour),
		Priority:    domain.IntFromPtrWithDefault(0, rec.Priority),
		Done:        rec.Done,
		TaskState:   domain.TaskPending,
	}
	if task != nil {
		item.Title = task.Title
		item.TaskState = domain.ParseTaskState(task.State)
		item.TaskPriority = domain.IntFromPtrWithDefault(0, task.Priority)
	}
	return item
}

// ToTask converts a server task.
func ToTask(rec TaskRecord) domain.Task {
	t := domain.Task{
		ID:          rec.ID.String(),
		Title:       rec.Title,
		Description: domain.StrFromPtr(rec.Description),
		State:       domain.ParseTaskState(rec.State),
		Priority:    domain.IntFromPtrWithDefault(0, rec.Priority),
		DueDate:     domain.StrFromPtr(rec.DueDate),
	}
	if rec.ProjectID != nil {
		t.ProjectID = rec.ProjectID.String()
	}
	return t
}

// ToTaskDetail converts the general-info payload.
func ToTaskDetail(info TaskGeneralInfo) domain.TaskDetail {
	d := domain.TaskDetail{Task: ToTask(info.TaskRecord)}
	if info.Project != nil {
		d.Project = &domain.ProjectInfo{
			Name:        info.Project.Name,
			Description: domain.StrFromPtr(info.Project.Description),
			State:       domain.ProjectState(info.Project.State),
		}
	}
	for _, n := range info.LastNotes {
		d.LastNotes = append(d.LastNotes, domain.Note{Content: n.Content})
	}
	for _, p := range info.NextPlannings {
		d.NextPlannings = append(d.NextPlannings, ToPlanning(p, &info.TaskRecord))
	}
	return d
}

// hourOrEmpty trims server "HH:MM:SS" values to "HH:MM". Values that do not
// parse are dropped so the item sorts as unscheduled.
func hourOrEmpty(h *string) string {
	if h == nil || *h == "" {
		return ""
	}
	out, err := domain.NormalizeHour(*h)
	if err != nil {
		return ""
	}
	return out
}

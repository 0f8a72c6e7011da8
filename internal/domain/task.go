package domain

// Task is the parent of one or more plannings.
type Task struct {
	ID          string
	Title       string
	Description string
	State       TaskState
	Priority    int
	DueDate     string
	ProjectID   string
}

// ProjectInfo is the project summary attached to a task detail.
type ProjectInfo struct {
	Name        string
	Description string
	State       ProjectState
}

type Note struct {
	Content string
}

// TaskDetail is the general-info view of a task.
type TaskDetail struct {
	Task
	Project       *ProjectInfo
	LastNotes     []Note
	NextPlannings []PlanningItem
}

package domain

// TaskState mirrors the parent task's lifecycle state.
type TaskState string

const (
	TaskPending    TaskState = "pending"
	TaskInProgress TaskState = "in_progress"
	TaskCompleted  TaskState = "completed"
	TaskArchived   TaskState = "archived"
)

// ParseTaskState maps a wire value to a TaskState. Unknown or empty values
// fall back to pending.
func ParseTaskState(s string) TaskState {
	switch TaskState(s) {
	case TaskInProgress, TaskCompleted, TaskArchived:
		return TaskState(s)
	default:
		return TaskPending
	}
}

type ProjectState string

const (
	ProjectNotStarted ProjectState = "not_started"
	ProjectInProgress ProjectState = "in_progress"
	ProjectCompleted  ProjectState = "completed"
	ProjectArchived   ProjectState = "archived"
)

// Action identifies a non-relocating drop target on the calendar sidebar.
type Action string

const (
	ActionDelete       Action = "delete"
	ActionPriority     Action = "priority"
	ActionComplete     Action = "complete"
	ActionCompleteTask Action = "complete-task"
	ActionInProgress   Action = "in-progress"
)

// ValidActions is the canonical set of accepted action zone names.
var ValidActions = map[string]bool{
	"delete": true, "priority": true, "complete": true,
	"complete-task": true, "in-progress": true,
}

const (
	MinPriority = 1
	MaxPriority = 5

	// DefaultDuplicatePriority is used when a duplicated planning carries no
	// usable priority of its own.
	DefaultDuplicatePriority = 3
)

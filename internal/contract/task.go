package contract

// TaskRecord is the server representation of a task.
type TaskRecord struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	ProjectID   *ID     `json:"project_id"`
	State       string  `json:"state"`
	Priority    *int    `json:"priority,omitempty"`
}

// TaskStatePatch is the body of PATCH /tasks/tasks/{id}.
type TaskStatePatch struct {
	State string `json:"state"`
}

type ProjectRecord struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	State       string  `json:"state"`
}

type NoteRecord struct {
	Content string `json:"content"`
}

// TaskGeneralInfo is the body of GET /tasks/tasks/{id}/general-info.
type TaskGeneralInfo struct {
	TaskRecord
	Project       *ProjectRecord   `json:"project"`
	LastNotes     []NoteRecord     `json:"last_notes"`
	NextPlannings []PlanningRecord `json:"next_plannings"`
}

// HealthStatus is the body of GET /healthcheck.
type HealthStatus struct {
	Status string `json:"status"`
}

package contract

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_AcceptsNumbersAndStrings(t *testing.T) {
	var rec struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "p-7", "c": null}`), &rec))
	assert.Equal(t, ID("42"), rec.A)
	assert.Equal(t, ID("p-7"), rec.B)
	assert.Equal(t, ID(""), rec.C)
}

func TestID_MarshalsNumericIDsAsNumbers(t *testing.T) {
	data, err := json.Marshal(PlanningCreate{TaskID: "12", PlannedDate: "2025-03-10", Priority: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"task_id": 12, "planned_date": "2025-03-10", "priority": 3}`, string(data))

	data, err = json.Marshal(PlanningCreate{TaskID: "t-1", PlannedDate: "2025-03-10", Priority: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"task_id": "t-1", "planned_date": "2025-03-10", "priority": 3}`, string(data))
}

func TestMovePatch_IncludesDoneOnlyWhenItemWasDone(t *testing.T) {
	data, err := json.Marshal(MovePatch("2025-03-11", true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"planned_date": "2025-03-11", "done": false}`, string(data))

	data, err = json.Marshal(MovePatch("2025-03-11", false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"planned_date": "2025-03-11"}`, string(data))
}

func TestHoursPatch_SendsNullForEmptyValues(t *testing.T) {
	data, err := json.Marshal(HoursPatch("09:00", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_hour": "09:00", "end_hour": null}`, string(data))
}

func TestToPlanning_UsesNestedTaskAndTrimsSeconds(t *testing.T) {
	start, end := "09:30:00", "bogus"
	prio, taskPrio := 4, 2
	rec := PlanningRecord{
		ID: "7", TaskID: "3", PlannedDate: "2025-03-10",
		StartHour: &start, EndHour: &end, Priority: &prio, Done: true,
		Task: &TaskRecord{ID: "3", Title: "Read", State: "in_progress", Priority: &taskPrio},
	}

	item := ToPlanning(rec, nil)

	assert.Equal(t, "7", item.ID)
	assert.Equal(t, "3", item.TaskID)
	assert.Equal(t, "09:30", item.StartTime)
	assert.Empty(t, item.EndTime)
	assert.Equal(t, 4, item.Priority)
	assert.True(t, item.Done)
	assert.Equal(t, "Read", item.Title)
	assert.Equal(t, domain.TaskInProgress, item.TaskState)
	assert.Equal(t, 2, item.TaskPriority)
}

func TestToTaskDetail(t *testing.T) {
	desc := "notes **here**"
	info := TaskGeneralInfo{
		TaskRecord:    TaskRecord{ID: "3", Title: "Read", State: "completed", Description: &desc},
		Project:       &ProjectRecord{Name: "Thesis", State: "in_progress"},
		LastNotes:     []NoteRecord{{Content: "first"}},
		NextPlannings: []PlanningRecord{{ID: "9", TaskID: "3", PlannedDate: "2025-03-12"}},
	}

	d := ToTaskDetail(info)

	assert.Equal(t, "Read", d.Title)
	assert.Equal(t, domain.TaskCompleted, d.State)
	assert.Equal(t, desc, d.Description)
	require.NotNil(t, d.Project)
	assert.Equal(t, domain.ProjectInProgress, d.Project.State)
	require.Len(t, d.NextPlannings, 1)
	assert.Equal(t, "Read", d.NextPlannings[0].Title)
}

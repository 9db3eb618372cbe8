package task

import (
	"time"

	"creator-studio/internal/model"
)

// CreateTaskInput is the input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Status      model.TaskStatus
	DueDate     *time.Time
	Tags        []string
}

// ListTasksInput filters the task list. Zero values mean no filter.
type ListTasksInput struct {
	Status    model.TaskStatus
	Completed *bool
}

// UpdateTaskInput carries partial updates. Empty fields keep the
// stored value; DueDate nil keeps, a zero DueDate clears.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	Status      model.TaskStatus
	DueDate     *time.Time
	Tags        []string
}

// ToggleTaskInput flips or sets the completed flag of a task.
type ToggleTaskInput struct {
	ID string
}

// RescheduleTaskInput moves a task's due date to a new calendar day.
type RescheduleTaskInput struct {
	ID   string
	Date time.Time
}

// UpdateChecklistInput checks or unchecks checklist items inside the
// task description. Item is matched as a case-insensitive substring.
type UpdateChecklistInput struct {
	ID   string
	Item string
	Done bool
}

// CreateTaskOutput is the result of creating a task.
type CreateTaskOutput struct {
	Task model.Task
}

// ListTasksOutput is the result of listing tasks.
type ListTasksOutput struct {
	Tasks []model.Task
}

// DetailTaskOutput is the result of fetching one task.
type DetailTaskOutput struct {
	Task model.Task
}

// UpdateTaskOutput is the result of updating a task.
type UpdateTaskOutput struct {
	Task model.Task
}

// ToggleTaskOutput is the result of toggling completion.
type ToggleTaskOutput struct {
	Task model.Task
}

// RescheduleTaskOutput reports the task after rescheduling. Moved is
// false when the task already sat on the requested day.
type RescheduleTaskOutput struct {
	Task  model.Task
	Moved bool
}

// UpdateChecklistOutput reports the task after a checklist edit and
// how many items the edit touched.
type UpdateChecklistOutput struct {
	Task    model.Task
	Matched int
}

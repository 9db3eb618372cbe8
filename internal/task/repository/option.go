package repository

import (
	"time"

	"creator-studio/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task. The
// repository assigns the ID and timestamps.
type CreateTaskOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	Status      model.TaskStatus
	Completed   bool
	DueDate     *time.Time
	Tags        []string
}

// GetOneTaskOptions holds the filters for fetching a single task.
// Non-zero fields are combined with AND.
type GetOneTaskOptions struct {
	ID    string
	Title string
}

// ListTasksOptions holds the filters for listing tasks. Zero values
// mean no filter.
type ListTasksOptions struct {
	Status    model.TaskStatus
	Completed *bool
}

package repository

import (
	"context"

	"creator-studio/internal/model"
)

// Repository groups all task data access operations.
type Repository interface {
	TaskRepository
}

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	repo "creator-studio/internal/task/repository"
)

// Create adds a new task. Title is required; priority defaults to
// medium and status to pending. A task created with status completed
// starts with the completed flag already set.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrMissingTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = defaultPriority
	}
	if !priority.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}

	status := input.Status
	if status == "" {
		status = defaultStatus
	}
	if !status.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidStatus
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Status:      status,
		Completed:   status == model.TaskStatusCompleted,
		DueDate:     input.DueDate,
		Tags:        normalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

package usecase

import (
	"context"

	"creator-studio/internal/task"
	repo "creator-studio/internal/task/repository"
)

// List returns tasks filtered by status and completion, sorted by due
// date with undated tasks last.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:    input.Status,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}

package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	repo "creator-studio/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when
// not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if found.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: found}, nil
}

// Update modifies an existing task. All fields are optional. A status
// change drags the completed flag along so the two never disagree, and
// the same happens in reverse when only the flag would drift.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	if input.Priority != "" && !input.Priority.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidPriority
	}
	if input.Status != "" && !input.Status.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidStatus
	}

	existing.Title = uc.coalesce(strings.TrimSpace(input.Title), existing.Title)
	existing.Description = uc.coalesce(strings.TrimSpace(input.Description), existing.Description)
	existing.Priority = uc.coalescePriority(input.Priority, existing.Priority)
	if input.DueDate != nil {
		if input.DueDate.IsZero() {
			existing.DueDate = nil
		} else {
			existing.DueDate = input.DueDate
		}
	}
	if input.Tags != nil {
		existing.Tags = normalizeTags(input.Tags)
	}
	if input.Status != "" {
		existing.Status = input.Status
		existing.Completed = input.Status == model.TaskStatusCompleted
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

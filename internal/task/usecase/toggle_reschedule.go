package usecase

import (
	"context"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	repo "creator-studio/internal/task/repository"
)

// Toggle flips the completed flag. Completing a task sets its status
// to completed; reopening one resets the status to pending so the flag
// and status never disagree.
func (uc *implUseCase) Toggle(ctx context.Context, input task.ToggleTaskInput) (task.ToggleTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleTaskOutput{}, task.ErrTaskNotFound
	}

	existing.Completed = !existing.Completed
	if existing.Completed {
		existing.Status = model.TaskStatusCompleted
	} else {
		existing.Status = model.TaskStatusPending
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	return task.ToggleTaskOutput{Task: updated}, nil
}

// Reschedule drops a task onto another calendar day. Dropping onto the
// day the task already occupies is a no-op with no persistence.
func (uc *implUseCase) Reschedule(ctx context.Context, input task.RescheduleTaskInput) (task.RescheduleTaskOutput, error) {
	if input.Date.IsZero() {
		return task.RescheduleTaskOutput{}, task.ErrInvalidDate
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule GetOneTask: %v", err)
		return task.RescheduleTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.RescheduleTaskOutput{}, task.ErrTaskNotFound
	}

	if existing.DueDate != nil && sameDay(*existing.DueDate, input.Date) {
		return task.RescheduleTaskOutput{Task: existing, Moved: false}, nil
	}

	d := input.Date
	existing.DueDate = &d

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule UpdateTask: %v", err)
		return task.RescheduleTaskOutput{}, err
	}
	return task.RescheduleTaskOutput{Task: updated, Moved: true}, nil
}

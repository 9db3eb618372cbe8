package usecase

import (
	"context"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	repo "creator-studio/internal/task/repository"
	"creator-studio/pkg/checklist"
)

// UpdateChecklist rewrites matching checklist items inside the task
// description. Checking the last open item completes the task itself;
// unchecking never reopens a completed task automatically.
func (uc *implUseCase) UpdateChecklist(ctx context.Context, input task.UpdateChecklistInput) (task.UpdateChecklistOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateChecklist GetOneTask: %v", err)
		return task.UpdateChecklistOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateChecklistOutput{}, task.ErrTaskNotFound
	}

	content, matched := checklist.SetItem(existing.Description, input.Item, input.Done)
	if matched == 0 {
		return task.UpdateChecklistOutput{}, task.ErrNoChecklistItem
	}
	existing.Description = content

	if input.Done && !existing.Completed && checklist.Complete(content) {
		existing.Completed = true
		existing.Status = model.TaskStatusCompleted
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateChecklist UpdateTask: %v", err)
		return task.UpdateChecklistOutput{}, err
	}
	return task.UpdateChecklistOutput{Task: updated, Matched: matched}, nil
}

package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/goal"
	repo "creator-studio/internal/goal/repository"
)

// Detail retrieves a single goal by ID. Returns ErrGoalNotFound when
// not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (goal.DetailGoalOutput, error) {
	found, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneGoal: %v", err)
		return goal.DetailGoalOutput{}, err
	}
	if found.ID == "" {
		return goal.DetailGoalOutput{}, goal.ErrGoalNotFound
	}
	return goal.DetailGoalOutput{Goal: found}, nil
}

// Update modifies an existing goal. All fields are optional. The
// current value moves through Progress, not here.
func (uc *implUseCase) Update(ctx context.Context, input goal.UpdateGoalInput) (goal.UpdateGoalOutput, error) {
	existing, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneGoal: %v", err)
		return goal.UpdateGoalOutput{}, err
	}
	if existing.ID == "" {
		return goal.UpdateGoalOutput{}, goal.ErrGoalNotFound
	}

	if input.Priority != "" && !input.Priority.Valid() {
		return goal.UpdateGoalOutput{}, goal.ErrInvalidPriority
	}
	if input.Target != nil && *input.Target <= 0 {
		return goal.UpdateGoalOutput{}, goal.ErrInvalidTarget
	}

	existing.Title = uc.coalesce(strings.TrimSpace(input.Title), existing.Title)
	existing.Description = uc.coalesce(strings.TrimSpace(input.Description), existing.Description)
	existing.Priority = uc.coalescePriority(input.Priority, existing.Priority)
	existing.Metric = uc.coalesce(strings.TrimSpace(input.Metric), existing.Metric)
	if input.Target != nil {
		existing.Target = *input.Target
	}
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

	updated, err := uc.repo.UpdateGoal(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateGoal: %v", err)
		return goal.UpdateGoalOutput{}, err
	}
	return goal.UpdateGoalOutput{Goal: updated}, nil
}

// Delete removes a goal by ID. Returns ErrGoalNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneGoal: %v", err)
		return err
	}
	if existing.ID == "" {
		return goal.ErrGoalNotFound
	}
	if err := uc.repo.DeleteGoal(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteGoal: %v", err)
		return err
	}
	return nil
}

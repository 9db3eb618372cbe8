package usecase

import (
	"context"

	"creator-studio/internal/goal"
	repo "creator-studio/internal/goal/repository"
)

// Progress records a new current value for the goal's metric. The
// value is absolute, not a delta, so stale updates can be replayed
// safely.
func (uc *implUseCase) Progress(ctx context.Context, input goal.ProgressGoalInput) (goal.ProgressGoalOutput, error) {
	if input.Current < 0 {
		return goal.ProgressGoalOutput{}, goal.ErrInvalidProgress
	}

	existing, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Progress GetOneGoal: %v", err)
		return goal.ProgressGoalOutput{}, err
	}
	if existing.ID == "" {
		return goal.ProgressGoalOutput{}, goal.ErrGoalNotFound
	}

	existing.Current = input.Current

	updated, err := uc.repo.UpdateGoal(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Progress UpdateGoal: %v", err)
		return goal.ProgressGoalOutput{}, err
	}
	return goal.ProgressGoalOutput{Goal: updated, Achieved: updated.Achieved()}, nil
}

// Reschedule drops a goal onto another calendar day. Dropping onto the
// day the goal already occupies is a no-op with no persistence.
func (uc *implUseCase) Reschedule(ctx context.Context, input goal.RescheduleGoalInput) (goal.RescheduleGoalOutput, error) {
	if input.Date.IsZero() {
		return goal.RescheduleGoalOutput{}, goal.ErrInvalidDate
	}

	existing, err := uc.repo.GetOneGoal(ctx, repo.GetOneGoalOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule GetOneGoal: %v", err)
		return goal.RescheduleGoalOutput{}, err
	}
	if existing.ID == "" {
		return goal.RescheduleGoalOutput{}, goal.ErrGoalNotFound
	}

	if existing.DueDate != nil && sameDay(*existing.DueDate, input.Date) {
		return goal.RescheduleGoalOutput{Goal: existing, Moved: false}, nil
	}

	d := input.Date
	existing.DueDate = &d

	updated, err := uc.repo.UpdateGoal(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule UpdateGoal: %v", err)
		return goal.RescheduleGoalOutput{}, err
	}
	return goal.RescheduleGoalOutput{Goal: updated, Moved: true}, nil
}

package usecase

import (
	"context"

	"creator-studio/internal/goal"
	repo "creator-studio/internal/goal/repository"
)

// List returns goals, optionally filtered by achievement.
func (uc *implUseCase) List(ctx context.Context, input goal.ListGoalsInput) (goal.ListGoalsOutput, error) {
	goals, err := uc.repo.ListGoals(ctx, repo.ListGoalsOptions{Achieved: input.Achieved})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListGoals: %v", err)
		return goal.ListGoalsOutput{}, err
	}

	return goal.ListGoalsOutput{Goals: goals}, nil
}

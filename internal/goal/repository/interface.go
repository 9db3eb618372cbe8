package repository

import (
	"context"

	"creator-studio/internal/model"
)

// Repository groups all goal data access operations.
type Repository interface {
	GoalRepository
}

// GoalRepository is the interface for goal data access operations.
type GoalRepository interface {
	CreateGoal(ctx context.Context, opt CreateGoalOptions) (model.Goal, error)
	GetOneGoal(ctx context.Context, opt GetOneGoalOptions) (model.Goal, error)
	ListGoals(ctx context.Context, opt ListGoalsOptions) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal model.Goal) (model.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

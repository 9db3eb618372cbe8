package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/goal"
	repo "creator-studio/internal/goal/repository"
)

// Create adds a new metric goal. Title and a positive target are
// required; priority defaults to medium.
func (uc *implUseCase) Create(ctx context.Context, input goal.CreateGoalInput) (goal.CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return goal.CreateGoalOutput{}, goal.ErrMissingTitle
	}
	if input.Target <= 0 {
		return goal.CreateGoalOutput{}, goal.ErrInvalidTarget
	}
	if input.Current < 0 {
		return goal.CreateGoalOutput{}, goal.ErrInvalidProgress
	}

	priority := input.Priority
	if priority == "" {
		priority = defaultPriority
	}
	if !priority.Valid() {
		return goal.CreateGoalOutput{}, goal.ErrInvalidPriority
	}

	created, err := uc.repo.CreateGoal(ctx, repo.CreateGoalOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Metric:      strings.TrimSpace(input.Metric),
		Current:     input.Current,
		Target:      input.Target,
		DueDate:     input.DueDate,
		Tags:        normalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateGoal: %v", err)
		return goal.CreateGoalOutput{}, err
	}

	return goal.CreateGoalOutput{Goal: created}, nil
}

package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/pillar"
	repo "creator-studio/internal/pillar/repository"
)

// List returns the user's pillars in insertion order.
func (uc *implUseCase) List(ctx context.Context, input pillar.ListPillarsInput) (pillar.ListPillarsOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pillar.ListPillarsOutput{}, pillar.ErrMissingUserID
	}

	pillars, err := uc.repo.ListPillars(ctx, repo.ListPillarsOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPillars: %v", err)
		return pillar.ListPillarsOutput{}, err
	}

	return pillar.ListPillarsOutput{Pillars: pillars}, nil
}

package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/pillar"
	repo "creator-studio/internal/pillar/repository"
)

// Create adds a new pillar to the user's collection. User id and a
// non-empty name are required.
func (uc *implUseCase) Create(ctx context.Context, input pillar.CreatePillarInput) (pillar.CreatePillarOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pillar.CreatePillarOutput{}, pillar.ErrMissingUserID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return pillar.CreatePillarOutput{}, pillar.ErrMissingName
	}

	created, err := uc.repo.CreatePillar(ctx, repo.CreatePillarOptions{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Keywords:    normalizeTags(input.Keywords),
		Color:       strings.TrimSpace(input.Color),
		Tags:        normalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreatePillar: %v", err)
		return pillar.CreatePillarOutput{}, err
	}

	return pillar.CreatePillarOutput{Pillar: created}, nil
}

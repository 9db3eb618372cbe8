package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/pillar"
	repo "creator-studio/internal/pillar/repository"
)

// Update modifies one of the user's pillars. Empty fields keep the
// stored value; Keywords and Tags are replaced only when non-nil.
func (uc *implUseCase) Update(ctx context.Context, input pillar.UpdatePillarInput) (pillar.UpdatePillarOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pillar.UpdatePillarOutput{}, pillar.ErrMissingUserID
	}

	existing, err := uc.repo.GetOnePillar(ctx, repo.GetOnePillarOptions{UserID: userID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOnePillar: %v", err)
		return pillar.UpdatePillarOutput{}, err
	}
	if existing.ID == "" {
		return pillar.UpdatePillarOutput{}, pillar.ErrPillarNotFound
	}

	existing.Name = uc.coalesce(strings.TrimSpace(input.Name), existing.Name)
	existing.Description = uc.coalesce(strings.TrimSpace(input.Description), existing.Description)
	existing.Color = uc.coalesce(strings.TrimSpace(input.Color), existing.Color)
	if input.Keywords != nil {
		existing.Keywords = normalizeTags(input.Keywords)
	}
	if input.Tags != nil {
		existing.Tags = normalizeTags(input.Tags)
	}

	updated, err := uc.repo.UpdatePillar(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdatePillar: %v", err)
		return pillar.UpdatePillarOutput{}, err
	}
	return pillar.UpdatePillarOutput{Pillar: updated}, nil
}

// Delete removes one of the user's pillars. Returns ErrPillarNotFound
// when it does not exist under that user.
func (uc *implUseCase) Delete(ctx context.Context, input pillar.DeletePillarInput) error {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pillar.ErrMissingUserID
	}

	existing, err := uc.repo.GetOnePillar(ctx, repo.GetOnePillarOptions{UserID: userID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOnePillar: %v", err)
		return err
	}
	if existing.ID == "" {
		return pillar.ErrPillarNotFound
	}
	if err := uc.repo.DeletePillar(ctx, userID, input.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeletePillar: %v", err)
		return err
	}
	return nil
}

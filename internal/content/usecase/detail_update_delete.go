package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/content"
	repo "creator-studio/internal/content/repository"
)

// Detail retrieves a single content item by ID. Returns
// ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (content.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return content.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return content.DetailItemOutput{}, content.ErrItemNotFound
	}
	return content.DetailItemOutput{Item: item}, nil
}

// Update modifies an existing item. All fields are optional; a stage
// change re-applies the auto-completion rule so earlier stages are
// marked done.
func (uc *implUseCase) Update(ctx context.Context, input content.UpdateItemInput) (content.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return content.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return content.UpdateItemOutput{}, content.ErrItemNotFound
	}

	if input.Priority != "" && !input.Priority.Valid() {
		return content.UpdateItemOutput{}, content.ErrInvalidPriority
	}
	if input.Status != "" && !input.Status.Valid() {
		return content.UpdateItemOutput{}, content.ErrInvalidStage
	}

	existing.Title = uc.coalesce(strings.TrimSpace(input.Title), existing.Title)
	existing.Description = uc.coalesce(strings.TrimSpace(input.Description), existing.Description)
	existing.Priority = uc.coalescePriority(input.Priority, existing.Priority)
	existing.Pillar = uc.coalesce(strings.TrimSpace(input.Pillar), existing.Pillar)
	if input.DueDate != nil {
		if input.DueDate.IsZero() {
			existing.DueDate = nil
		} else {
			existing.DueDate = input.DueDate
		}
	}
	existing.StageDueDates = mergeStageDates(existing.StageDueDates, input.StageDueDates)
	if input.Tags != nil {
		existing.Tags = normalizeTags(input.Tags)
	}
	if input.Status != "" && input.Status != existing.Status {
		existing.Status = input.Status
		existing.StageCompletions = content.AutoCompletePreviousStages(input.Status, existing.StageCompletions)
	}

	item, err := uc.repo.UpdateItem(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return content.UpdateItemOutput{}, err
	}
	return content.UpdateItemOutput{Item: item}, nil
}

// Delete removes an item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return content.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

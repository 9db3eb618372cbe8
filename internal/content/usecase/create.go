package usecase

import (
	"context"
	"strings"

	"creator-studio/internal/content"
	repo "creator-studio/internal/content/repository"
)

// Create adds a new content item to the board. Title is required;
// priority defaults to medium and the stage to ideas. Stages before
// the starting stage are marked completed so the board invariant holds
// from the first save.
func (uc *implUseCase) Create(ctx context.Context, input content.CreateItemInput) (content.CreateItemOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return content.CreateItemOutput{}, content.ErrMissingTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = defaultPriority
	}
	if !priority.Valid() {
		return content.CreateItemOutput{}, content.ErrInvalidPriority
	}

	status := input.Status
	if status == "" {
		status = defaultStage
	}
	if !status.Valid() {
		return content.CreateItemOutput{}, content.ErrInvalidStage
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		Priority:      priority,
		Status:        status,
		Pillar:        strings.TrimSpace(input.Pillar),
		DueDate:       input.DueDate,
		StageDueDates: cloneStageDates(input.StageDueDates),
		Completions:   content.AutoCompletePreviousStages(status, nil),
		Tags:          normalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return content.CreateItemOutput{}, err
	}

	return content.CreateItemOutput{Item: item}, nil
}

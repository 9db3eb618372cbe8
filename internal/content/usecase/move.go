package usecase

import (
	"context"
	"time"

	"creator-studio/internal/content"
	repo "creator-studio/internal/content/repository"
	"creator-studio/internal/model"
)

// Move drops an item into another board column. A drop onto the
// item's current column is a no-op: the item is returned unchanged and
// nothing is persisted. Moving forward marks every earlier stage
// completed; moving backward keeps completions already earned.
func (uc *implUseCase) Move(ctx context.Context, input content.MoveItemInput) (content.MoveItemOutput, error) {
	if !input.To.Valid() {
		return content.MoveItemOutput{}, content.ErrInvalidStage
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Move GetOneItem: %v", err)
		return content.MoveItemOutput{}, err
	}
	if existing.ID == "" {
		return content.MoveItemOutput{}, content.ErrItemNotFound
	}

	// A drop back into the source column and a drop into the column the
	// item already sits in are both no-ops.
	if input.From == input.To || existing.Status == input.To {
		return content.MoveItemOutput{Item: existing, Moved: false}, nil
	}

	existing.Status = input.To
	existing.StageCompletions = content.AutoCompletePreviousStages(input.To, existing.StageCompletions)

	item, err := uc.repo.UpdateItem(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Move UpdateItem: %v", err)
		return content.MoveItemOutput{}, err
	}
	return content.MoveItemOutput{Item: item, Moved: true}, nil
}

// Reschedule drops an item onto another calendar day. With a stage set
// the per-stage deadline moves; otherwise the overall due date moves.
// Dropping onto the day the item already occupies is a no-op with no
// persistence.
func (uc *implUseCase) Reschedule(ctx context.Context, input content.RescheduleItemInput) (content.RescheduleItemOutput, error) {
	if input.Date.IsZero() {
		return content.RescheduleItemOutput{}, content.ErrInvalidDate
	}
	if input.Stage != "" && !input.Stage.Valid() {
		return content.RescheduleItemOutput{}, content.ErrInvalidStage
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule GetOneItem: %v", err)
		return content.RescheduleItemOutput{}, err
	}
	if existing.ID == "" {
		return content.RescheduleItemOutput{}, content.ErrItemNotFound
	}

	if input.Stage != "" {
		if cur, ok := existing.StageDueDates[input.Stage]; ok && sameDay(cur, input.Date) {
			return content.RescheduleItemOutput{Item: existing, Moved: false}, nil
		}
		dates := cloneStageDates(existing.StageDueDates)
		if dates == nil {
			dates = make(map[model.Stage]time.Time, 1)
		}
		dates[input.Stage] = input.Date
		existing.StageDueDates = dates
	} else {
		if existing.DueDate != nil && sameDay(*existing.DueDate, input.Date) {
			return content.RescheduleItemOutput{Item: existing, Moved: false}, nil
		}
		d := input.Date
		existing.DueDate = &d
	}

	item, err := uc.repo.UpdateItem(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule UpdateItem: %v", err)
		return content.RescheduleItemOutput{}, err
	}
	return content.RescheduleItemOutput{Item: item, Moved: true}, nil
}

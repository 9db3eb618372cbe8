package usecase

import (
	"context"

	"creator-studio/internal/content"
	repo "creator-studio/internal/content/repository"
	"creator-studio/internal/model"
)

// List returns content items, optionally filtered by stage and pillar.
func (uc *implUseCase) List(ctx context.Context, input content.ListItemsInput) (content.ListItemsOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return content.ListItemsOutput{}, content.ErrInvalidStage
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status: input.Status,
		Pillar: input.Pillar,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return content.ListItemsOutput{}, err
	}

	return content.ListItemsOutput{Items: items, Total: len(items)}, nil
}

// Board groups every item into kanban columns following the production
// stage order. Items keep their insertion order inside a column.
func (uc *implUseCase) Board(ctx context.Context) (content.BoardOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Board ListItems: %v", err)
		return content.BoardOutput{}, err
	}

	byStage := make(map[model.Stage][]model.ContentItem, len(model.Stages))
	for _, item := range items {
		byStage[item.Status] = append(byStage[item.Status], item)
	}

	columns := make([]content.BoardColumn, 0, len(model.Stages))
	for _, stage := range model.Stages {
		col := content.BoardColumn{
			Stage: stage,
			Items: byStage[stage],
			Total: len(byStage[stage]),
		}
		if col.Items == nil {
			col.Items = []model.ContentItem{}
		}
		columns = append(columns, col)
	}

	return content.BoardOutput{Columns: columns}, nil
}

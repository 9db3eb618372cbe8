package usecase_test

import (
	"context"
	"testing"

	"creator-studio/internal/content"
	"creator-studio/internal/model"
)

func TestListFilters(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(
		model.ContentItem{ID: "a", Title: "A", Status: model.StageIdeas, Pillar: "tech"},
		model.ContentItem{ID: "b", Title: "B", Status: model.StagePlanning, Pillar: "tech"},
		model.ContentItem{ID: "c", Title: "C", Status: model.StagePlanning, Pillar: "life"},
	)
	uc := newUseCase(repo)
	ctx := context.Background()

	out, err := uc.List(ctx, content.ListItemsInput{Status: model.StagePlanning})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 2 {
		t.Errorf("planning items = %d, want 2", out.Total)
	}

	out, err = uc.List(ctx, content.ListItemsInput{Status: model.StagePlanning, Pillar: "life"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 1 || out.Items[0].ID != "c" {
		t.Errorf("filtered items = %+v, want only c", out.Items)
	}

	if _, err := uc.List(ctx, content.ListItemsInput{Status: "archived"}); err != content.ErrInvalidStage {
		t.Errorf("unknown stage filter error = %v, want ErrInvalidStage", err)
	}
}

func TestBoardGroupsByStageOrder(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(
		model.ContentItem{ID: "a", Title: "A", Status: model.StagePublished},
		model.ContentItem{ID: "b", Title: "B", Status: model.StageIdeas},
		model.ContentItem{ID: "c", Title: "C", Status: model.StageIdeas},
	)
	uc := newUseCase(repo)

	out, err := uc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}

	if len(out.Columns) != len(model.Stages) {
		t.Fatalf("columns = %d, want %d", len(out.Columns), len(model.Stages))
	}
	for i, stage := range model.Stages {
		if out.Columns[i].Stage != stage {
			t.Errorf("column %d = %s, want %s", i, out.Columns[i].Stage, stage)
		}
	}

	ideas := out.Columns[0]
	if ideas.Total != 2 || ideas.Items[0].ID != "b" || ideas.Items[1].ID != "c" {
		t.Errorf("ideas column = %+v, want b then c", ideas.Items)
	}

	// Empty columns are present with an empty, non-nil item list.
	planning := out.Columns[1]
	if planning.Items == nil || planning.Total != 0 {
		t.Errorf("planning column = %+v, want empty non-nil", planning)
	}
}

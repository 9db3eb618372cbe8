package file_test

import (
	"context"
	"reflect"
	"testing"

	"creator-studio/internal/model"
	repo "creator-studio/internal/pillar/repository"
	"creator-studio/internal/pillar/repository/file"
	"creator-studio/pkg/log"
	"creator-studio/pkg/slotstore"
)

func newStore(t *testing.T, dir string) *slotstore.Store {
	t.Helper()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("slotstore.New() error = %v", err)
	}
	return s
}

func TestPillarsSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	created, err := first.CreatePillar(ctx, repo.CreatePillarOptions{
		UserID:      "u-100",
		Name:        "Tech Reviews",
		Description: "Hands-on looks at new gear",
		Keywords:    []string{"review", "unboxing"},
		Color:       "#3b82f6",
	})
	if err != nil {
		t.Fatalf("CreatePillar() error = %v", err)
	}

	second := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	got, err := second.GetOnePillar(ctx, repo.GetOnePillarOptions{UserID: "u-100", ID: created.ID})
	if err != nil {
		t.Fatalf("GetOnePillar() error = %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("reloaded pillar differs:\n got %+v\nwant %+v", got, created)
	}
}

func TestPillarsAreScopedByUser(t *testing.T) {
	ctx := context.Background()
	r := file.New(ctx, newStore(t, t.TempDir()), log.NewNoopLogger(), nil)

	mine, _ := r.CreatePillar(ctx, repo.CreatePillarOptions{UserID: "u-1", Name: "Tutorials"})
	r.CreatePillar(ctx, repo.CreatePillarOptions{UserID: "u-2", Name: "Vlogs"})

	pillars, err := r.ListPillars(ctx, repo.ListPillarsOptions{UserID: "u-1"})
	if err != nil {
		t.Fatalf("ListPillars() error = %v", err)
	}
	if len(pillars) != 1 || pillars[0].ID != mine.ID {
		t.Errorf("u-1 pillars = %+v, want only Tutorials", pillars)
	}

	// A lookup under the wrong user must not leak another user's pillar.
	got, err := r.GetOnePillar(ctx, repo.GetOnePillarOptions{UserID: "u-2", ID: mine.ID})
	if err != nil {
		t.Fatalf("GetOnePillar() error = %v", err)
	}
	if got.ID != "" {
		t.Errorf("GetOnePillar() across users = %+v, want zero value", got)
	}
}

func TestListPillarsEmptyUser(t *testing.T) {
	ctx := context.Background()
	r := file.New(ctx, newStore(t, t.TempDir()), log.NewNoopLogger(), nil)

	pillars, err := r.ListPillars(ctx, repo.ListPillarsOptions{UserID: "nobody"})
	if err != nil {
		t.Fatalf("ListPillars() error = %v", err)
	}
	if pillars == nil || len(pillars) != 0 {
		t.Errorf("ListPillars() = %v, want empty non-nil slice", pillars)
	}
}

func TestUpdateAndDeletePillar(t *testing.T) {
	ctx := context.Background()
	r := file.New(ctx, newStore(t, t.TempDir()), log.NewNoopLogger(), nil)

	created, _ := r.CreatePillar(ctx, repo.CreatePillarOptions{UserID: "u-1", Name: "Shorts"})

	created.Name = "Shorts & Clips"
	created.Keywords = []string{"shorts", "clips"}
	updated, err := r.UpdatePillar(ctx, created)
	if err != nil {
		t.Fatalf("UpdatePillar() error = %v", err)
	}
	if updated.Name != "Shorts & Clips" || updated.CreatedAt != created.CreatedAt {
		t.Errorf("UpdatePillar() = %+v, want renamed with original CreatedAt", updated)
	}

	if err := r.DeletePillar(ctx, "u-1", created.ID); err != nil {
		t.Fatalf("DeletePillar() error = %v", err)
	}
	if err := r.DeletePillar(ctx, "u-1", created.ID); err != repo.ErrNotFound {
		t.Errorf("second DeletePillar() error = %v, want ErrNotFound", err)
	}

	if _, err := r.UpdatePillar(ctx, model.Pillar{UserID: "u-1", ID: "ghost"}); err != repo.ErrNotFound {
		t.Errorf("UpdatePillar() error = %v, want ErrNotFound", err)
	}
}

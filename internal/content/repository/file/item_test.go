package file_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	repo "creator-studio/internal/content/repository"
	"creator-studio/internal/content/repository/file"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
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

func TestCollectionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	due := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	first := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	created, err := first.CreateItem(ctx, repo.CreateItemOptions{
		Title:    "Channel trailer",
		Priority: model.PriorityHigh,
		Status:   model.StagePlanning,
		DueDate:  &due,
		StageDueDates: map[model.Stage]time.Time{
			model.StagePlanning: due,
		},
		Completions: map[model.Stage]bool{model.StageIdeas: true},
		Tags:        []string{"evergreen"},
	})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	// A fresh repository over the same directory must see the same data.
	second := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	items, err := second.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items after restart = %d, want 1", len(items))
	}
	if !reflect.DeepEqual(items[0], created) {
		t.Errorf("reloaded item differs:\n got %+v\nwant %+v", items[0], created)
	}
}

func TestUpdateAndDeletePersist(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	r := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	a, _ := r.CreateItem(ctx, repo.CreateItemOptions{Title: "A", Status: model.StageIdeas, Priority: model.PriorityMedium})
	b, _ := r.CreateItem(ctx, repo.CreateItemOptions{Title: "B", Status: model.StageIdeas, Priority: model.PriorityMedium})

	a.Status = model.StagePlanning
	if _, err := r.UpdateItem(ctx, a); err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if err := r.DeleteItem(ctx, b.ID); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}

	reloaded := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nil)
	items, _ := reloaded.ListItems(ctx, repo.ListItemsOptions{})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].ID != a.ID || items[0].Status != model.StagePlanning {
		t.Errorf("reloaded item = %+v", items[0])
	}
}

func TestUpdateMissingItem(t *testing.T) {
	ctx := context.Background()
	r := file.New(ctx, newStore(t, t.TempDir()), log.NewNoopLogger(), nil)

	_, err := r.UpdateItem(ctx, model.ContentItem{ID: "ghost"})
	if err != repo.ErrNotFound {
		t.Errorf("UpdateItem() error = %v, want ErrNotFound", err)
	}
	if err := r.DeleteItem(ctx, "ghost"); err != repo.ErrNotFound {
		t.Errorf("DeleteItem() error = %v, want ErrNotFound", err)
	}
}

func TestCorruptSlotDegradesToEmptyAndNotifies(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, file.Slot+".json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write corrupt slot: %v", err)
	}

	nc := notify.NewCenter(log.NewNoopLogger(), 10)
	r := file.New(ctx, newStore(t, dir), log.NewNoopLogger(), nc)

	items, err := r.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want empty collection", len(items))
	}

	recent := nc.Recent(0)
	if len(recent) != 1 || recent[0].Code != "storage_degraded" {
		t.Errorf("notifications = %+v, want one storage_degraded", recent)
	}
}

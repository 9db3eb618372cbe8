package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	repo "creator-studio/internal/content/repository"
	"creator-studio/internal/model"
)

// CreateItem appends a new content item and persists the collection.
// The repository owns id and timestamp assignment.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	item := model.ContentItem{
		ID:               uuid.NewString(),
		Title:            opt.Title,
		Description:      opt.Description,
		Priority:         opt.Priority,
		Status:           opt.Status,
		Pillar:           opt.Pillar,
		DueDate:          opt.DueDate,
		StageDueDates:    opt.StageDueDates,
		StageCompletions: opt.Completions,
		Tags:             opt.Tags,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r.items = append(r.items, item)
	if err := r.saveLocked(ctx, "CreateItem"); err != nil {
		r.items = r.items[:len(r.items)-1]
		return model.ContentItem{}, err
	}
	return item, nil
}

// GetOneItem retrieves a single item by the provided filters (AND
// condition). Returns a zero-value item (ID == "") when not found — do
// NOT return an error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if opt.ID != "" && item.ID != opt.ID {
			continue
		}
		if opt.Title != "" && item.Title != opt.Title {
			continue
		}
		return item, nil
	}
	return model.ContentItem{}, nil
}

// ListItems returns items in insertion order, optionally filtered by
// stage and pillar.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ContentItem, 0, len(r.items))
	for _, item := range r.items {
		if opt.Status != "" && item.Status != opt.Status {
			continue
		}
		if opt.Pillar != "" && item.Pillar != opt.Pillar {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// UpdateItem replaces the stored item with the same ID and persists.
// Returns ErrNotFound when the item does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, item model.ContentItem) (model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(item.ID)
	if idx < 0 {
		return model.ContentItem{}, repo.ErrNotFound
	}

	prev := r.items[idx]
	item.CreatedAt = prev.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	r.items[idx] = item

	if err := r.saveLocked(ctx, "UpdateItem"); err != nil {
		r.items[idx] = prev
		return model.ContentItem{}, err
	}
	return item, nil
}

// DeleteItem removes the item with the given id and persists. Returns
// ErrNotFound when the item does not exist.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return repo.ErrNotFound
	}

	prev := r.items
	r.items = append(append([]model.ContentItem{}, r.items[:idx]...), r.items[idx+1:]...)

	if err := r.saveLocked(ctx, "DeleteItem"); err != nil {
		r.items = prev
		return err
	}
	return nil
}

func (r *implRepository) indexLocked(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

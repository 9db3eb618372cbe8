package usecase_test

import (
	"context"
	"fmt"

	"creator-studio/internal/content"
	"creator-studio/internal/content/repository"
	"creator-studio/internal/content/usecase"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
)

// fakeRepo is an in-memory Repository that counts mutating calls so
// tests can assert when persistence was skipped.
type fakeRepo struct {
	items map[string]model.ContentItem
	order []string
	seq   int

	createCalls int
	updateCalls int
	deleteCalls int

	failSave bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]model.ContentItem{}}
}

func (f *fakeRepo) seed(items ...model.ContentItem) {
	for _, item := range items {
		f.items[item.ID] = item
		f.order = append(f.order, item.ID)
	}
}

func (f *fakeRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.ContentItem, error) {
	f.createCalls++
	if f.failSave {
		return model.ContentItem{}, repository.ErrFailedToSave
	}
	f.seq++
	item := model.ContentItem{
		ID:               fmt.Sprintf("item-%d", f.seq),
		Title:            opt.Title,
		Description:      opt.Description,
		Priority:         opt.Priority,
		Status:           opt.Status,
		Pillar:           opt.Pillar,
		DueDate:          opt.DueDate,
		StageDueDates:    opt.StageDueDates,
		StageCompletions: opt.Completions,
		Tags:             opt.Tags,
	}
	f.items[item.ID] = item
	f.order = append(f.order, item.ID)
	return item, nil
}

func (f *fakeRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.ContentItem, error) {
	for _, id := range f.order {
		item := f.items[id]
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

func (f *fakeRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.ContentItem, error) {
	out := []model.ContentItem{}
	for _, id := range f.order {
		item := f.items[id]
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

func (f *fakeRepo) UpdateItem(ctx context.Context, item model.ContentItem) (model.ContentItem, error) {
	f.updateCalls++
	if f.failSave {
		return model.ContentItem{}, repository.ErrFailedToSave
	}
	if _, ok := f.items[item.ID]; !ok {
		return model.ContentItem{}, repository.ErrNotFound
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeRepo) DeleteItem(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failSave {
		return repository.ErrFailedToSave
	}
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newUseCase(repo repository.Repository) content.UseCase {
	return usecase.New(repo, log.NewNoopLogger())
}

package repository

import (
	"context"

	"creator-studio/internal/model"
)

// Repository is the composed interface for the content domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for content items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.ContentItem, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.ContentItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.ContentItem, error)
	UpdateItem(ctx context.Context, item model.ContentItem) (model.ContentItem, error)
	DeleteItem(ctx context.Context, id string) error
}

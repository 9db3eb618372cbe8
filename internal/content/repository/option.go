package repository

import (
	"time"

	"creator-studio/internal/model"
)

// CreateItemOptions holds parameters for inserting a new content item.
// The repository assigns the ID and timestamps.
type CreateItemOptions struct {
	Title         string
	Description   string
	Priority      model.Priority
	Status        model.Stage
	Pillar        string
	DueDate       *time.Time
	StageDueDates map[model.Stage]time.Time
	Completions   map[model.Stage]bool
	Tags          []string
}

// GetOneItemOptions holds filter parameters for fetching a single item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID    string
	Title string
}

// ListItemsOptions holds filter parameters for listing items.
type ListItemsOptions struct {
	Status model.Stage
	Pillar string
}

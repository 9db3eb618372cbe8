package content

import (
	"time"

	"creator-studio/internal/model"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title         string
	Description   string
	Priority      model.Priority
	Status        model.Stage
	Pillar        string
	DueDate       *time.Time
	StageDueDates map[model.Stage]time.Time
	Tags          []string
}

type ListItemsInput struct {
	Status model.Stage
	Pillar string
}

type UpdateItemInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	Status      model.Stage
	Pillar      string
	// DueDate nil keeps the stored value; a zero DueDate clears it.
	DueDate *time.Time
	// StageDueDates entries are merged over the existing map; a zero
	// time removes the entry for that stage.
	StageDueDates map[model.Stage]time.Time
	Tags          []string
}

// MoveItemInput moves an item to another board column. From is the
// column the client dragged out of; it is optional and only used to
// detect a same-column drop early.
type MoveItemInput struct {
	ID   string
	From model.Stage
	To   model.Stage
}

// RescheduleItemInput changes an item's deadline from a calendar drop.
// When Stage is set the per-stage date moves; otherwise the overall
// due date moves.
type RescheduleItemInput struct {
	ID    string
	Date  time.Time
	Stage model.Stage
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.ContentItem
}

type ListItemsOutput struct {
	Items []model.ContentItem
	Total int
}

type DetailItemOutput struct {
	Item model.ContentItem
}

type UpdateItemOutput struct {
	Item model.ContentItem
}

// MoveItemOutput reports the item after the move. Moved is false when
// source and destination columns were identical and nothing was
// persisted.
type MoveItemOutput struct {
	Item  model.ContentItem
	Moved bool
}

type RescheduleItemOutput struct {
	Item  model.ContentItem
	Moved bool
}

// BoardColumn is one kanban column in stage order.
type BoardColumn struct {
	Stage model.Stage
	Items []model.ContentItem
	Total int
}

type BoardOutput struct {
	Columns []BoardColumn
}

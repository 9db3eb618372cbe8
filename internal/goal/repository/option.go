package repository

import (
	"time"

	"creator-studio/internal/model"
)

// CreateGoalOptions holds the parameters for creating a goal. The
// repository assigns the ID and timestamps.
type CreateGoalOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	Metric      string
	Current     float64
	Target      float64
	DueDate     *time.Time
	Tags        []string
}

// GetOneGoalOptions holds the filters for fetching a single goal.
// Non-zero fields are combined with AND.
type GetOneGoalOptions struct {
	ID    string
	Title string
}

// ListGoalsOptions holds the filters for listing goals. Achieved nil
// means no filter.
type ListGoalsOptions struct {
	Achieved *bool
}

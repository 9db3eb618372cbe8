package goal

import (
	"time"

	"creator-studio/internal/model"
)

// CreateGoalInput is the input for creating a goal.
type CreateGoalInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Metric      string
	Current     float64
	Target      float64
	DueDate     *time.Time
	Tags        []string
}

// ListGoalsInput filters the goal list. Achieved nil means no filter.
type ListGoalsInput struct {
	Achieved *bool
}

// UpdateGoalInput carries partial updates. Empty fields keep the
// stored value; DueDate nil keeps, a zero DueDate clears. Target nil
// keeps the stored target.
type UpdateGoalInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	Metric      string
	Target      *float64
	DueDate     *time.Time
	Tags        []string
}

// ProgressGoalInput sets the goal's current metric value.
type ProgressGoalInput struct {
	ID      string
	Current float64
}

// RescheduleGoalInput moves a goal's deadline to a new calendar day.
type RescheduleGoalInput struct {
	ID   string
	Date time.Time
}

// CreateGoalOutput is the result of creating a goal.
type CreateGoalOutput struct {
	Goal model.Goal
}

// ListGoalsOutput is the result of listing goals.
type ListGoalsOutput struct {
	Goals []model.Goal
}

// DetailGoalOutput is the result of fetching one goal.
type DetailGoalOutput struct {
	Goal model.Goal
}

// UpdateGoalOutput is the result of updating a goal.
type UpdateGoalOutput struct {
	Goal model.Goal
}

// ProgressGoalOutput reports the goal after a progress update.
// Achieved is true when the update pushed the goal over its target.
type ProgressGoalOutput struct {
	Goal     model.Goal
	Achieved bool
}

// RescheduleGoalOutput reports the goal after rescheduling. Moved is
// false when the goal already sat on the requested day.
type RescheduleGoalOutput struct {
	Goal  model.Goal
	Moved bool
}

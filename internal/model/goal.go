package model

import "time"

// Goal is a tracked numeric target (subscribers, views, watch hours)
// with a deadline. Its state is derived from progress, not stored.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Metric      string     `json:"metric,omitempty"`
	Current     float64    `json:"current"`
	Target      float64    `json:"target"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Progress returns the completion ratio clamped to [0, 1]. A goal
// without a positive target reports zero progress.
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Achieved reports whether the goal's target has been reached.
func (g Goal) Achieved() bool {
	return g.Target > 0 && g.Current >= g.Target
}

package goal

import "errors"

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrMissingTitle    = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidTarget   = errors.New("target must be positive")
	ErrInvalidProgress = errors.New("progress cannot be negative")
	ErrInvalidDate     = errors.New("invalid date")
)

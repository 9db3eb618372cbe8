package pillar

import "errors"

// Domain-specific errors for the pillar package.
var (
	ErrPillarNotFound = errors.New("pillar not found")
	ErrMissingUserID  = errors.New("user id is required")
	ErrMissingName    = errors.New("pillar name is required")
	ErrMissingChannel = errors.New("channel id is required")
)

package repository

import "errors"

var (
	ErrNotFound     = errors.New("pillar not found")
	ErrFailedToSave = errors.New("failed to save pillars")
)

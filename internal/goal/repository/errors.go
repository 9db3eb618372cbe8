package repository

import "errors"

var (
	ErrNotFound     = errors.New("goal not found")
	ErrFailedToSave = errors.New("failed to save goals")
)

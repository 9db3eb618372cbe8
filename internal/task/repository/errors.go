package repository

import "errors"

var (
	ErrNotFound     = errors.New("task not found")
	ErrFailedToSave = errors.New("failed to save tasks")
)

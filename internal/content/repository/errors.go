package repository

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrFailedToSave = errors.New("failed to persist collection")
)

package content

import "errors"

var (
	ErrItemNotFound    = errors.New("content item not found")
	ErrMissingTitle    = errors.New("content item title is required")
	ErrInvalidStage    = errors.New("unknown workflow stage")
	ErrInvalidPriority = errors.New("unknown priority")
	ErrInvalidDate     = errors.New("a valid date is required")
)

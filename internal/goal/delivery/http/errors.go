package http

import (
	"creator-studio/internal/goal"
	"creator-studio/internal/goal/repository"
	pkgErrors "creator-studio/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors fall through to a generic 500 so a missed mapping
// never crashes a request.
func (h *handler) mapError(err error) error {
	switch err {
	case goal.ErrGoalNotFound:
		return pkgErrors.NewHTTPError(404, "goal not found")
	case goal.ErrMissingTitle,
		goal.ErrInvalidPriority,
		goal.ErrInvalidTarget,
		goal.ErrInvalidProgress,
		goal.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, err.Error())
	case repository.ErrFailedToSave:
		return pkgErrors.NewHTTPError(500, "failed to persist goals")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

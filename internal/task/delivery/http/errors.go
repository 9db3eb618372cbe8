package http

import (
	"creator-studio/internal/task"
	"creator-studio/internal/task/repository"
	pkgErrors "creator-studio/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors fall through to a generic 500 so a missed mapping
// never crashes a request.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrNoChecklistItem:
		return pkgErrors.NewHTTPError(404, err.Error())
	case task.ErrMissingTitle,
		task.ErrInvalidStatus,
		task.ErrInvalidPriority,
		task.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, err.Error())
	case repository.ErrFailedToSave:
		return pkgErrors.NewHTTPError(500, "failed to persist tasks")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

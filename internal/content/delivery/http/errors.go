package http

import (
	"creator-studio/internal/content"
	"creator-studio/internal/content/repository"
	pkgErrors "creator-studio/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors fall through to a generic 500 so a missed mapping
// never crashes a request.
func (h *handler) mapError(err error) error {
	switch err {
	case content.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "content item not found")
	case content.ErrMissingTitle,
		content.ErrInvalidStage,
		content.ErrInvalidPriority,
		content.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, err.Error())
	case repository.ErrFailedToSave:
		return pkgErrors.NewHTTPError(500, "failed to persist content items")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

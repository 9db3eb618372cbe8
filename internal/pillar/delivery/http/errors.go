package http

import (
	"creator-studio/internal/pillar"
	"creator-studio/internal/pillar/repository"
	pkgErrors "creator-studio/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors fall through to a generic 500 so a missed mapping
// never crashes a request.
func (h *handler) mapError(err error) error {
	switch err {
	case pillar.ErrPillarNotFound:
		return pkgErrors.NewHTTPError(404, "pillar not found")
	case pillar.ErrMissingUserID,
		pillar.ErrMissingName,
		pillar.ErrMissingChannel:
		return pkgErrors.NewHTTPError(400, err.Error())
	case repository.ErrFailedToSave:
		return pkgErrors.NewHTTPError(500, "failed to persist pillars")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

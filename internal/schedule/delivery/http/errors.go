package http

import (
	pkgErrors "creator-studio/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The schedule layer only reads, so every use-case failure is a
// repository problem and answers as internal.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(500, "internal server error")
}

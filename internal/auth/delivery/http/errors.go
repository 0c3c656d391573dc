package http

import (
	"errors"

	"gcal-relay/internal/auth"
	pkgErrors "gcal-relay/pkg/errors"
)

var errMissingCode = pkgErrors.NewBadRequestError("Missing authorization code.")

// mapError translates auth use-case errors into HTTP errors; unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrEmptyCode):
		return errMissingCode
	case errors.Is(err, auth.ErrCodeExchangeFailed):
		return pkgErrors.NewBadRequestError("Failed to exchange authorization code.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

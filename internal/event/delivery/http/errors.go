package http

import (
	"errors"

	"gcal-relay/internal/event"
	pkgErrors "gcal-relay/pkg/errors"
	"gcal-relay/pkg/gcalendar"
)

// mapError translates event use-case errors into HTTP errors.
// Remote failures surface Google's message with a 500; unknown errors become a generic 500.
func (h *handler) mapError(err error) error {
	var remoteErr *gcalendar.RemoteError
	switch {
	case errors.Is(err, event.ErrNoGoogleAccount), errors.Is(err, event.ErrNoGoogleToken):
		return pkgErrors.NewBadRequestError(err.Error())
	case errors.As(err, &remoteErr):
		// Listing failures carry Google's message too, not a fixed
		// "Failed to list events and calendars" detail, so the client sees which call failed.
		return pkgErrors.NewInternalServerError(remoteErr.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

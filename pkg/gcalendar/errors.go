package gcalendar

import (
	"errors"

	"google.golang.org/api/googleapi"
)

// RemoteError is returned by every Gateway method when the Calendar API call fails.
// Its message is the message of the underlying error.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status Google answered with, or 0 if no response was received.
func (e *RemoteError) StatusCode() int {
	var apiErr *googleapi.Error
	if errors.As(e.Err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

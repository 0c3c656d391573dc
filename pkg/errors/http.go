package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with an explicit status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

func NewInternalServerError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// Default messages, matching what API clients already expect.
const (
	DefaultBadRequestMessage          = "Bad request"
	DefaultInternalServerErrorMessage = "Internal Server Error"
)

var (
	ErrBadRequest          = NewBadRequestError(DefaultBadRequestMessage)
	ErrInternalServerError = NewInternalServerError(DefaultInternalServerErrorMessage)
)

// AsHTTPError unwraps err into an *HTTPError. Anything else is reported as ErrInternalServerError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}

// Package errs defines the client-facing errors the handlers recover from
// locally. Anything that is not an *HTTPError is a backend fault and is left
// for the Lambda platform to report.
package errs

import (
	"errors"
	"net/http"
)

// HTTPError is a locally handled failure with the status it maps to.
// Only Message is serialized.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewBadRequestError creates a 400 HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError creates a 404 HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// AsHTTPError reports whether err (or anything it wraps) is an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

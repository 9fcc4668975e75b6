package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest   = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooMany      = NewHTTPError(http.StatusTooManyRequests, "too many requests")

	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "something went wrong, please try again later")
)

// AsHTTPError unwraps err into an *HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

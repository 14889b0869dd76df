package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the envelope error code
// the delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError builds a client error. The envelope code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

var (
	ErrInternalServerError = &HTTPError{StatusCode: http.StatusInternalServerError, Code: 500, Message: "Something went wrong"}
	ErrTooManyRequests     = &HTTPError{StatusCode: http.StatusTooManyRequests, Code: 429, Message: "Too many requests"}
)

// AsHTTPError reports whether err wraps an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows which status it should be
// reported with. Delivery layers translate domain errors into these.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorf is NewHTTPError with fmt formatting.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// StatusCode returns the status carried by err, or fallback when err is not
// an HTTPError.
func StatusCode(err error, fallback int) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return fallback
}

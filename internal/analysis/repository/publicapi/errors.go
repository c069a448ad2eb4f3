package publicapi

import (
	"errors"
	"fmt"
)

// ErrTransport reports a failed HTTP exchange or an unreadable envelope.
var ErrTransport = errors.New("publicapi: transport error")

// APIError is a well-formed envelope whose header carries a non-success code.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("publicapi: [%s] %s", e.Code, e.Message)
}

// FieldError reports an accepted record that lacks a field the mapping needs,
// or carries one that cannot be read.
type FieldError struct {
	Source string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("publicapi: %s: field %q %s", e.Source, e.Field, e.Reason)
}

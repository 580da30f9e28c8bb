package services

import "errors"

// ErrNotFound signals that a referenced task id is not in the store.
var ErrNotFound = errors.New("task not found")

// ValidationError signals that submitted input violates a field rule.
// The message is safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

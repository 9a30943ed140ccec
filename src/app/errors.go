package app

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no caller identity was presented.
	ErrUnauthenticated = errors.New("Unauthenticated")

	// ErrUnauthorized means the caller does not own the addressed store.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrNoRecord is returned (possibly wrapped) by repositories when a row
	// does not exist.
	ErrNoRecord = errors.New("record not found")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError reports that the addressed resource does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// notFound converts a repository miss into a NotFoundError and passes every
// other error through.
func notFound(resource string, err error) error {
	if errors.Is(err, ErrNoRecord) {
		return &NotFoundError{Resource: resource}
	}
	return err
}

package items

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthenticated is returned when a mutation has no principal.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the principal may not mutate the item.
	ErrForbidden = errors.New("not allowed to modify this item")
	// ErrNotFound is returned for unknown item ids.
	ErrNotFound = errors.New("item not found")
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// StoreError wraps a backend failure. Its message is not shown to clients.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

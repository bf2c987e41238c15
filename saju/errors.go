package saju

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateInput is returned for a malformed or missing birth date or time
	ErrInvalidDateInput = errors.New("invalid date input")

	// ErrMissingSecondSubject is returned by two-person operations when either
	// person's birth date is absent
	ErrMissingSecondSubject = errors.New("missing second subject")
)

// InputError records which input field failed to parse
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func invalidInput(field, value string) error {
	return &InputError{Field: field, Value: value, Err: ErrInvalidDateInput}
}

package prompt

import (
	"errors"
	"fmt"
)

var (
	ErrMaxAttempts       = errors.New("max attempts exceeded")
	ErrIllegalTransition = errors.New("illegal prompt transition")
	ErrInvalidForm       = errors.New("invalid form")
	ErrNoOptions         = errors.New("no options to choose from")
)

type maxAttemptsError struct {
	attempts int
	lastErr  error
}

func (e *maxAttemptsError) Error() string {
	return fmt.Sprintf("%v after %d attempts: %v", ErrMaxAttempts, e.attempts, e.lastErr)
}

func (e *maxAttemptsError) Unwrap() []error {
	return []error{ErrMaxAttempts, e.lastErr}
}

// FieldError identifies the [Form] field that caused collection to fail.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

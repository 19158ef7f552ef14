package parse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse       = errors.New("parse failure") // ErrParse is matched by every conversion failure from this package.
	ErrUnknownKind = errors.New("unknown kind")
	ErrKindType    = errors.New("kind registered with a different type")
)

// Error is a general conversion failure of some input to an expected type.
type Error struct {
	Input    string
	Expected string
	Reason   string // Reason is an optional detail about why conversion failed.
}

// Failure creates a new [*Error] for the given input and expected type name.
func Failure(input, expected string) *Error {
	return &Error{Input: input, Expected: expected}
}

// Because adds a reason to the [*Error].
func (e *Error) Because(format string, args ...any) *Error {
	e.Reason = fmt.Sprintf(format, args...)
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot parse '%s' as %s", e.Input, e.Expected)
	if len(e.Reason) > 0 {
		return msg + ": " + e.Reason
	}
	return msg
}

func (e *Error) Is(err error) bool {
	return err == ErrParse
}

// ArityMismatchError is returned when a fixed-arity tuple doesn't get the right number of elements.
type ArityMismatchError struct {
	Input    string
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("expected %d values but got %d in '%s'", e.Expected, e.Got, e.Input)
}

func (e *ArityMismatchError) Is(err error) bool {
	return err == ErrParse
}

// UnknownChoiceError is returned when input doesn't match any option by index or label.
type UnknownChoiceError struct {
	Input   string
	Options []string
}

func (e *UnknownChoiceError) Error() string {
	if len(e.Options) == 0 {
		return fmt.Sprintf("'%s' is not a valid option, there are no options to choose from", e.Input)
	}
	return fmt.Sprintf("'%s' is not a valid option, choose 1-%d or one of: %s", e.Input, len(e.Options), strings.Join(e.Options, ", "))
}

func (e *UnknownChoiceError) Is(err error) bool {
	return err == ErrParse
}

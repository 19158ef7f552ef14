package validate

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrRejected = errors.New("validation failed") // ErrRejected is matched by every rejection from a [Validator].

// Error is a rejection with a human-readable message.
type Error struct {
	Message string
}

// Reject creates a new [*Error] with the given message.
func Reject(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if len(e.Message) == 0 {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *Error) Is(err error) bool {
	return err == ErrRejected
}

// Validator checks a parsed value.
// Check returns nil if the value is accepted, and an error matching [ErrRejected] if it's not.
//
// Validators should be pure and total: no side effects, and no panics for any input.
type Validator[T any] interface {
	Check(value T) error
}

type funcValidator[T any] struct {
	message   string
	predicate func(T) bool
}

func (v *funcValidator[T]) Check(value T) error {
	if v.predicate(value) {
		return nil
	}
	return &Error{Message: v.message}
}

// New creates a [Validator] from a predicate, rejecting with message when the predicate returns false.
func New[T any](message string, predicate func(value T) bool) Validator[T] {
	if predicate == nil {
		panic("nil predicate")
	}
	return &funcValidator[T]{message: message, predicate: predicate}
}

type messageOverride[T any] struct {
	message string
	inner   Validator[T]
}

func (v *messageOverride[T]) Check(value T) error {
	if err := v.inner.Check(value); err != nil {
		return &Error{Message: v.message}
	}
	return nil
}

// WithMessage replaces the message of any rejection from v with message, regardless of which inner validator rejected.
func WithMessage[T any](v Validator[T], message string) Validator[T] {
	if v == nil {
		panic("nil validator")
	}
	return &messageOverride[T]{message: message, inner: v}
}

type and[T any] []Validator[T]

func (a and[T]) Check(value T) error {
	for _, v := range a {
		if err := v.Check(value); err != nil {
			return err
		}
	}
	return nil
}

// And accepts a value only if all validators accept it.
// Validators are evaluated left to right, and the first rejection is returned without evaluating the rest.
func And[T any](a, b Validator[T], others ...Validator[T]) Validator[T] {
	return and[T](combine(a, b, others))
}

type or[T any] []Validator[T]

func (o or[T]) Check(value T) error {
	var last error
	for _, v := range o {
		last = v.Check(value)
		if last == nil {
			return nil
		}
	}
	return last
}

// Or accepts a value if any validator accepts it.
// Validators are evaluated left to right, stopping at the first that accepts.
// If all of them reject, then the rejection of the last validator is returned.
func Or[T any](a, b Validator[T], others ...Validator[T]) Validator[T] {
	return or[T](combine(a, b, others))
}

func combine[T any](a, b Validator[T], others []Validator[T]) []Validator[T] {
	all := append([]Validator[T]{a, b}, others...)
	for _, v := range all {
		if v == nil {
			panic("nil validator")
		}
	}
	return all
}

// NotEmpty rejects strings that are empty after trimming whitespace.
func NotEmpty() Validator[string] {
	return New("Input cannot be empty", func(s string) bool {
		return len(strings.TrimSpace(s)) > 0
	})
}

// MinLength rejects strings with fewer than n characters.
func MinLength(n int) Validator[string] {
	return New(fmt.Sprintf("Input must be at least %d characters", n), func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	})
}

// MaxLength rejects strings with more than n characters.
func MaxLength(n int) Validator[string] {
	return New(fmt.Sprintf("Input must be at most %d characters", n), func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	})
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsPositive rejects numbers that are not greater than zero.
func IsPositive[T Number]() Validator[T] {
	return New("Value must be positive", func(n T) bool {
		return n > 0
	})
}

// InRange rejects values outside of lo and hi, inclusive on both ends.
func InRange[T cmp.Ordered](lo, hi T) Validator[T] {
	return New(fmt.Sprintf("Value must be between %v and %v", lo, hi), func(n T) bool {
		return cmp.Compare(n, lo) >= 0 && cmp.Compare(n, hi) <= 0
	})
}

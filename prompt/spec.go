package prompt

import (
	"fmt"

	"github.com/saylorsolutions/ask/parse"
	"github.com/saylorsolutions/ask/validate"
)

// Spec describes a single prompt for a value of type T.
// A Spec is immutable once created with [New].
type Spec[T any] struct {
	text        string
	parser      parse.Parser[T]
	def         *T
	fallback    *T
	validator   validate.Validator[T]
	message     string
	menu        []string
	instruction string
}

// Option configures a [Spec].
type Option[T any] func(*Spec[T])

// New creates a [Spec] that prompts with text, and converts input with parser.
// Passing a nil parser will panic.
func New[T any](text string, parser parse.Parser[T], opts ...Option[T]) Spec[T] {
	if parser == nil {
		panic("nil parser")
	}
	spec := Spec[T]{text: text, parser: parser}
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	if spec.validator != nil && len(spec.message) > 0 {
		spec.validator = validate.WithMessage(spec.validator, spec.message)
	}
	return spec
}

// WithDefault sets a value that is accepted as-is when the user enters an empty line.
// The default is not parsed or validated.
func WithDefault[T any](value T) Option[T] {
	return func(s *Spec[T]) {
		s.def = &value
	}
}

// WithFallback sets a value that is accepted when input fails to parse.
// A prompt with a fallback will never retry a parse failure.
func WithFallback[T any](value T) Option[T] {
	return func(s *Spec[T]) {
		s.fallback = &value
	}
}

// WithValidator sets a [validate.Validator] that parsed values must satisfy.
func WithValidator[T any](validator validate.Validator[T]) Option[T] {
	return func(s *Spec[T]) {
		s.validator = validator
	}
}

// WithMessage sets the message shown when validation fails, replacing the message from the validator.
func WithMessage[T any](message string) Option[T] {
	return func(s *Spec[T]) {
		s.message = message
	}
}

// WithMenu shows a numbered list of options before each attempt, with an optional instruction line.
func WithMenu[T any](options []string, instruction string) Option[T] {
	return func(s *Spec[T]) {
		s.menu = append([]string(nil), options...)
		s.instruction = instruction
	}
}

// Text returns the prompt text.
func (s Spec[T]) Text() string {
	return s.text
}

// Default returns the default value, if one is set.
func (s Spec[T]) Default() (T, bool) {
	if s.def == nil {
		var zero T
		return zero, false
	}
	return *s.def, true
}

// Fallback returns the fallback value, if one is set.
func (s Spec[T]) Fallback() (T, bool) {
	if s.fallback == nil {
		var zero T
		return zero, false
	}
	return *s.fallback, true
}

func (s Spec[T]) defaultHint() string {
	if s.def == nil {
		return ""
	}
	return fmt.Sprint(*s.def)
}

package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser converts raw text to a value of type T.
// A failed conversion always returns a non-nil error and the zero value, never a partially populated T.
type Parser[T any] interface {
	Parse(raw string) (T, error)
	// Name is a human-readable description of T, used in failure messages.
	Name() string
}

type funcParser[T any] struct {
	name string
	fn   func(string) (T, error)
}

func (p *funcParser[T]) Parse(raw string) (T, error) {
	return p.fn(raw)
}

func (p *funcParser[T]) Name() string {
	return p.name
}

// New creates a [Parser] from a conversion function.
// This is the usual way to introduce a custom type.
func New[T any](name string, fn func(raw string) (T, error)) Parser[T] {
	if fn == nil {
		panic("nil parse function")
	}
	return &funcParser[T]{name: name, fn: fn}
}

// String accepts any input verbatim.
func String() Parser[string] {
	return New("text", func(raw string) (string, error) {
		return raw, nil
	})
}

// Char accepts exactly one character, ignoring surrounding whitespace.
func Char() Parser[rune] {
	const name = "single character"
	return New(name, func(raw string) (rune, error) {
		trimmed := strings.TrimSpace(raw)
		if utf8.RuneCountInString(trimmed) != 1 {
			return 0, Failure(raw, name)
		}
		r, _ := utf8.DecodeRuneInString(trimmed)
		return r, nil
	})
}

var (
	TruthyTokens = []string{"y", "yes", "true", "t", "1", "on"}   // TruthyTokens are the case-insensitive inputs that [Bool] accepts as true.
	FalsyTokens  = []string{"n", "no", "false", "f", "0", "off"} // FalsyTokens are the case-insensitive inputs that [Bool] accepts as false.
)

// Bool accepts one of the [TruthyTokens] or [FalsyTokens], in any case.
// Anything else is a failure, there is no default guess.
func Bool() Parser[bool] {
	const name = "boolean (yes/no, true/false, y/n, 1/0, on/off)"
	return New(name, func(raw string) (bool, error) {
		sval := strings.ToLower(strings.TrimSpace(raw))
		for _, tok := range TruthyTokens {
			if sval == tok {
				return true, nil
			}
		}
		for _, tok := range FalsyTokens {
			if sval == tok {
				return false, nil
			}
		}
		return false, Failure(raw, name)
	})
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Floating interface {
	~float32 | ~float64
}

// Int parses a base 10 signed integer that must fit in T.
func Int[T Signed]() Parser[T] {
	var (
		minVal = int64(math.MinInt64)
		maxVal = int64(math.MaxInt64)
	)
	// Narrower types truncate on conversion, so find the bounds by checking round trips.
	for bits := 8; bits < 64; bits *= 2 {
		hi := int64(1)<<(bits-1) - 1
		if int64(T(hi+1)) != hi+1 {
			minVal, maxVal = -hi-1, hi
			break
		}
	}
	name := "integer"
	if maxVal < math.MaxInt32 {
		name = "integer (" + strconv.FormatInt(minVal, 10) + " to " + strconv.FormatInt(maxVal, 10) + ")"
	}
	return New(name, func(raw string) (T, error) {
		ival, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, Failure(raw, name)
		}
		if ival < minVal || ival > maxVal {
			return 0, Failure(raw, name).Because("out of range")
		}
		return T(ival), nil
	})
}

// Uint parses a base 10 unsigned integer that must fit in T.
func Uint[T Unsigned]() Parser[T] {
	maxVal := uint64(math.MaxUint64)
	for bits := 8; bits < 64; bits *= 2 {
		hi := uint64(1)<<bits - 1
		if uint64(T(hi+1)) != hi+1 {
			maxVal = hi
			break
		}
	}
	name := "positive integer"
	if maxVal < math.MaxUint32 {
		name = "positive integer (0 to " + strconv.FormatUint(maxVal, 10) + ")"
	}
	return New(name, func(raw string) (T, error) {
		uval, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, Failure(raw, name)
		}
		if uval > maxVal {
			return 0, Failure(raw, name).Because("out of range")
		}
		return T(uval), nil
	})
}

// Float parses a decimal number.
// Values that overflow T are rejected rather than becoming infinite.
func Float[T Floating]() Parser[T] {
	const name = "decimal number"
	return New(name, func(raw string) (T, error) {
		fval, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, Failure(raw, name)
		}
		converted := T(fval)
		if !math.IsInf(fval, 0) && math.IsInf(float64(converted), 0) {
			return 0, Failure(raw, name).Because("out of range")
		}
		return converted, nil
	})
}

package parse

import (
	"fmt"
	"strings"
)

// Delimiters lists the separators considered by [Split], in order of preference.
// The empty string stands for a run of whitespace.
var Delimiters = []string{",", "", ";", "|"}

// Split breaks raw into tokens using the first of [Delimiters] that appears in the input.
// Tokens are trimmed, and empty tokens are dropped.
// Input without any delimiter is a single token, and empty input has no tokens.
func Split(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	for _, delim := range Delimiters {
		if len(delim) == 0 {
			if strings.ContainsAny(trimmed, " \t\v\f\r\n") {
				return strings.Fields(trimmed)
			}
			continue
		}
		if strings.Contains(trimmed, delim) {
			return clean(strings.Split(trimmed, delim))
		}
	}
	return []string{trimmed}
}

func clean(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) == 0 {
			continue
		}
		cleaned = append(cleaned, tok)
	}
	return cleaned
}

// Slice parses a delimited list of elements, see [Split].
// The whole conversion fails if any element fails.
func Slice[T any](elem Parser[T]) Parser[[]T] {
	name := "list of " + elem.Name()
	return New(name, func(raw string) ([]T, error) {
		tokens := Split(raw)
		vals := make([]T, 0, len(tokens))
		for _, tok := range tokens {
			val, err := elem.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", Failure(raw, name), err)
			}
			vals = append(vals, val)
		}
		return vals, nil
	})
}

func splitExactly(raw string, n int) ([]string, error) {
	tokens := Split(raw)
	if len(tokens) != n {
		return nil, &ArityMismatchError{Input: raw, Expected: n, Got: len(tokens)}
	}
	return tokens, nil
}

// Tuple parses exactly n delimited elements of the same type.
func Tuple[T any](n int, elem Parser[T]) Parser[[]T] {
	if n < 1 {
		panic("tuple arity must be > 0")
	}
	name := fmt.Sprintf("%d values of %s", n, elem.Name())
	return New(name, func(raw string) ([]T, error) {
		tokens, err := splitExactly(raw, n)
		if err != nil {
			return nil, err
		}
		vals := make([]T, n)
		for i, tok := range tokens {
			vals[i], err = elem.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", Failure(raw, name), err)
			}
		}
		return vals, nil
	})
}

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairOf parses two delimited values.
func PairOf[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	name := fmt.Sprintf("pair of %s and %s", a.Name(), b.Name())
	return New(name, func(raw string) (Pair[A, B], error) {
		var pair Pair[A, B]
		tokens, err := splitExactly(raw, 2)
		if err != nil {
			return pair, err
		}
		first, err := a.Parse(tokens[0])
		if err != nil {
			return pair, fmt.Errorf("%w: %w", Failure(raw, name), err)
		}
		second, err := b.Parse(tokens[1])
		if err != nil {
			return pair, fmt.Errorf("%w: %w", Failure(raw, name), err)
		}
		pair.First, pair.Second = first, second
		return pair, nil
	})
}

// TripleOf parses three delimited values.
func TripleOf[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	name := fmt.Sprintf("triple of %s, %s, and %s", a.Name(), b.Name(), c.Name())
	return New(name, func(raw string) (Triple[A, B, C], error) {
		var triple Triple[A, B, C]
		tokens, err := splitExactly(raw, 3)
		if err != nil {
			return triple, err
		}
		first, err := a.Parse(tokens[0])
		if err != nil {
			return triple, fmt.Errorf("%w: %w", Failure(raw, name), err)
		}
		second, err := b.Parse(tokens[1])
		if err != nil {
			return triple, fmt.Errorf("%w: %w", Failure(raw, name), err)
		}
		third, err := c.Parse(tokens[2])
		if err != nil {
			return triple, fmt.Errorf("%w: %w", Failure(raw, name), err)
		}
		triple.First, triple.Second, triple.Third = first, second, third
		return triple, nil
	})
}

// AbsentTokens are the case-insensitive inputs that [Optional] treats as no value.
// Blank input is always absent.
var AbsentTokens = []string{"none", "null", "nil", "-", "skip"}

// IsAbsent reports whether raw is blank or one of the [AbsentTokens].
func IsAbsent(raw string) bool {
	sval := strings.ToLower(strings.TrimSpace(raw))
	if len(sval) == 0 {
		return true
	}
	for _, tok := range AbsentTokens {
		if sval == tok {
			return true
		}
	}
	return false
}

// Optional returns nil for absent input (see [IsAbsent]), and otherwise delegates to inner.
// A failure from inner is still a failure, it doesn't become absent.
func Optional[T any](inner Parser[T]) Parser[*T] {
	name := "optional " + inner.Name() + " (or empty/none for no value)"
	return New(name, func(raw string) (*T, error) {
		if IsAbsent(raw) {
			return nil, nil
		}
		val, err := inner.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		return &val, nil
	})
}

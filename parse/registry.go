package parse

import (
	"fmt"
	"slices"
)

// Kind identifies a type of value that a [Registry] knows how to parse.
type Kind string

const (
	KindString  Kind = "string"
	KindChar    Kind = "char"
	KindBool    Kind = "bool"
	KindInt     Kind = "int"
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindUint    Kind = "uint"
	KindUint8   Kind = "uint8"
	KindUint16  Kind = "uint16"
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
)

// entry erases the type of a registered parser, while retaining the typed parser for [Lookup].
type entry interface {
	parseAny(raw string) (any, error)
	name() string
}

type typedEntry[T any] struct {
	parser Parser[T]
}

func (e typedEntry[T]) parseAny(raw string) (any, error) {
	val, err := e.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (e typedEntry[T]) name() string {
	return e.parser.Name()
}

// Registry is a dispatch table from [Kind] to a conversion function.
// New kinds may be added with [Register] without changes to anything that parses through the Registry.
//
// A Registry is not safe for concurrent modification, it's expected to be set up before use.
type Registry struct {
	entries map[Kind]entry
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{entries: map[Kind]entry{}}
}

// Defaults creates a [Registry] with all the built-in primitive kinds registered.
func Defaults() *Registry {
	r := NewRegistry()
	Register(r, KindString, String())
	Register(r, KindChar, Char())
	Register(r, KindBool, Bool())
	Register(r, KindInt, Int[int]())
	Register(r, KindInt8, Int[int8]())
	Register(r, KindInt16, Int[int16]())
	Register(r, KindInt32, Int[int32]())
	Register(r, KindInt64, Int[int64]())
	Register(r, KindUint, Uint[uint]())
	Register(r, KindUint8, Uint[uint8]())
	Register(r, KindUint16, Uint[uint16]())
	Register(r, KindUint32, Uint[uint32]())
	Register(r, KindUint64, Uint[uint64]())
	Register(r, KindFloat32, Float[float32]())
	Register(r, KindFloat64, Float[float64]())
	return r
}

// Register adds or replaces the [Parser] for a [Kind].
// Passing a nil parser will panic.
func Register[T any](r *Registry, kind Kind, parser Parser[T]) {
	if parser == nil {
		panic("nil parser")
	}
	if r.entries == nil {
		r.entries = map[Kind]entry{}
	}
	r.entries[kind] = typedEntry[T]{parser: parser}
}

// Lookup retrieves the typed [Parser] registered for a [Kind].
// Returns [ErrUnknownKind] if nothing is registered, or [ErrKindType] if the registered parser doesn't produce a T.
func Lookup[T any](r *Registry, kind Kind) (Parser[T], error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	typed, ok := e.(typedEntry[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s parses %s", ErrKindType, kind, e.name())
	}
	return typed.parser, nil
}

// Parse converts raw with the [Parser] registered for kind.
func (r *Registry) Parse(raw string, kind Kind) (any, error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return e.parseAny(raw)
}

// Has reports whether a [Parser] is registered for kind.
func (r *Registry) Has(kind Kind) bool {
	_, ok := r.entries[kind]
	return ok
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

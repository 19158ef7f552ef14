package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/saylorsolutions/ask/parse"
	"github.com/saylorsolutions/ask/validate"
)

// Form is an ordered set of named prompts that are resolved together with [Form.Collect].
// Adding fields does no I/O, and problems with the form definition are reported by [Form.Collect].
type Form struct {
	fields []*field
	names  map[string]bool
	err    error
}

type field struct {
	name     string
	optional bool
	// resolve returns the answer for this field, and false if the field resolved to nothing.
	resolve func(r *Resolver, retry bool) (string, bool, error)
}

// FieldOption changes how a [Form] field is treated when it fails to resolve.
type FieldOption func(*field)

// Optional marks a field as optional.
// An optional field that fails is left out of the [Answers] instead of failing the [Form].
func Optional() FieldOption {
	return func(f *field) {
		f.optional = true
	}
}

// Required marks a field as required, which is the default for everything other than [Form.OptionalText].
func Required() FieldOption {
	return func(f *field) {
		f.optional = false
	}
}

func NewForm() *Form {
	return &Form{names: map[string]bool{}}
}

func (f *Form) invalid(name string, err error) {
	if f.err == nil {
		f.err = &FieldError{Field: name, Err: err}
	}
}

func (f *Form) add(fld *field, opts []FieldOption) *Form {
	name := strings.TrimSpace(fld.name)
	switch {
	case len(name) == 0:
		f.invalid(fld.name, fmt.Errorf("%w: empty field name", ErrInvalidForm))
		return f
	case f.names[name]:
		f.invalid(name, fmt.Errorf("%w: duplicate field name", ErrInvalidForm))
		return f
	}
	fld.name = name
	for _, opt := range opts {
		if opt != nil {
			opt(fld)
		}
	}
	f.names[name] = true
	f.fields = append(f.fields, fld)
	return f
}

// AddField adds a field of any type to the [Form], using format to turn the accepted value into its answer.
// If format is nil, then values are formatted with [fmt.Sprint].
func AddField[T any](f *Form, name string, spec Spec[T], format func(T) string, opts ...FieldOption) *Form {
	if format == nil {
		format = func(val T) string {
			return fmt.Sprint(val)
		}
	}
	return f.add(&field{
		name: name,
		resolve: func(r *Resolver, retry bool) (string, bool, error) {
			val, err := resolve(r, spec, retry)
			if err != nil {
				return "", false, err
			}
			return format(val), true, nil
		},
	}, opts)
}

// Text adds a field that accepts any line of text as-is.
func (f *Form) Text(name, prompt string, opts ...FieldOption) *Form {
	return AddField(f, name, New(prompt, parse.String()), nil, opts...)
}

// Number adds a field that accepts a decimal number, formatted in its shortest form.
func (f *Form) Number(name, prompt string, opts ...FieldOption) *Form {
	return AddField(f, name, New(prompt, parse.Float[float64]()), func(val float64) string {
		return strconv.FormatFloat(val, 'f', -1, 64)
	}, opts...)
}

// Boolean adds a yes or no field, formatted as "true" or "false".
func (f *Form) Boolean(name, prompt string, opts ...FieldOption) *Form {
	return AddField(f, name, New(prompt+ConfirmSuffix, parse.Bool()), strconv.FormatBool, opts...)
}

// Choice adds a field that picks one of options, and stores its label.
func (f *Form) Choice(name, prompt string, options []string, opts ...FieldOption) *Form {
	if len(options) == 0 {
		f.invalid(name, fmt.Errorf("%w: %w", ErrInvalidForm, ErrNoOptions))
		return f
	}
	spec := New(prompt, parse.Choice(options...), WithMenu[parse.Selection](options, ""))
	return AddField(f, name, spec, parse.Selection.String, opts...)
}

// MultiChoice adds a field that picks any number of options, and stores their labels joined with ", ".
// No input is read when there are no options, and the answer is empty.
func (f *Form) MultiChoice(name, prompt string, options []string, opts ...FieldOption) *Form {
	if len(options) == 0 {
		return f.add(&field{
			name: name,
			resolve: func(*Resolver, bool) (string, bool, error) {
				return "", true, nil
			},
		}, opts)
	}
	spec := New(prompt, parse.MultiChoice(options...), WithMenu[[]parse.Selection](options, MultiSelectInstruction))
	return AddField(f, name, spec, func(sel []parse.Selection) string {
		return strings.Join(parse.Labels(sel), ", ")
	}, opts...)
}

// OptionalText adds a text field that may be skipped, see [parse.IsAbsent].
// Skipped fields are left out of the [Answers].
// This field is optional unless [Required] is passed, in which case a skipped field stores an empty string.
func (f *Form) OptionalText(name, prompt string, opts ...FieldOption) *Form {
	spec := New(prompt, parse.Optional(parse.String()))
	fld := &field{name: name, optional: true}
	fld.resolve = func(r *Resolver, retry bool) (string, bool, error) {
		val, err := resolve(r, spec, retry)
		if err != nil {
			return "", false, err
		}
		if val == nil {
			return "", !fld.optional, nil
		}
		return *val, true, nil
	}
	return f.add(fld, opts)
}

// Validated adds a text field that must pass validator.
// If message is not empty, then it's shown instead of the validator's message when the input is rejected.
func (f *Form) Validated(name, prompt string, validator validate.Validator[string], message string, opts ...FieldOption) *Form {
	if validator == nil {
		panic("nil validator")
	}
	spec := New(prompt, parse.String(), WithValidator(validator), WithMessage[string](message))
	return AddField(f, name, spec, nil, opts...)
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	names := make([]string, len(f.fields))
	for i, fld := range f.fields {
		names[i] = fld.name
	}
	return names
}

// Err returns the first problem found while defining the form, if any.
func (f *Form) Err() error {
	return f.err
}

// Collect resolves every field in declaration order with [Resolve].
// If a required field fails, then its error is returned wrapped in a [FieldError] with no answers.
func (f *Form) Collect(r *Resolver) (*Answers, error) {
	return f.collect(r, !r.cfg.NonInteractive)
}

// TryCollect is the same as [Form.Collect], but resolves each field with [TryResolve].
func (f *Form) TryCollect(r *Resolver) (*Answers, error) {
	return f.collect(r, false)
}

func (f *Form) collect(r *Resolver, retry bool) (*Answers, error) {
	if f.err != nil {
		return nil, f.err
	}
	answers := newAnswers()
	for _, fld := range f.fields {
		value, present, err := fld.resolve(r, retry)
		if err != nil {
			if !fld.optional {
				return nil, &FieldError{Field: fld.name, Err: err}
			}
			r.log.Debug("Optional field left unanswered", "field", fld.name, "error", err)
			continue
		}
		if present {
			answers.set(fld.name, value)
		}
	}
	r.log.Debug("Form collected", "fields", len(f.fields), "answered", answers.Len())
	return answers, nil
}

// IsFieldError reports whether err was caused by the named [Form] field.
func IsFieldError(err error, name string) bool {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Field == name
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saylorsolutions/ask/parse"
	"github.com/saylorsolutions/ask/prompt"
	"github.com/saylorsolutions/ask/validate"
	"gopkg.in/yaml.v3"
)

var ErrDefinition = errors.New("invalid form definition")

const (
	TypeText        = "text"
	TypeNumber      = "number"
	TypeBoolean     = "boolean"
	TypeChoice      = "choice"
	TypeMultiChoice = "multi_choice"
	TypeOptional    = "optional"
	TypeValidated   = "validated"
)

// Definition is a form loaded from YAML.
type Definition struct {
	Title  string            `yaml:"title"`
	Fields []FieldDefinition `yaml:"fields"`
}

// FieldDefinition describes one form field.
// Type is either one of the Type* constants, or a [parse.Kind] known to [parse.Defaults].
type FieldDefinition struct {
	Name      string   `yaml:"name"`
	Prompt    string   `yaml:"prompt"`
	Type      string   `yaml:"type"`
	Optional  *bool    `yaml:"optional"`
	Default   *string  `yaml:"default"`
	Options   []string `yaml:"options"`
	NotEmpty  bool     `yaml:"not_empty"`
	MinLength int      `yaml:"min_length"`
	MaxLength int      `yaml:"max_length"`
	Prefix    string   `yaml:"prefix"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Positive  bool     `yaml:"positive"`
	Message   string   `yaml:"message"`
}

// LoadDefinition reads a YAML form definition.
// Unknown keys are rejected so typos don't silently drop constraints.
func LoadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrDefinition)
	}
	return &def, nil
}

// Form builds a [prompt.Form] from the definition.
func (d *Definition) Form(registry *parse.Registry) (*prompt.Form, error) {
	form := prompt.NewForm()
	for i, fd := range d.Fields {
		if err := fd.addTo(form, registry); err != nil {
			name := fd.Name
			if len(name) == 0 {
				name = "#" + strconv.Itoa(i+1)
			}
			return nil, fmt.Errorf("%w: field '%s': %w", ErrDefinition, name, err)
		}
	}
	if err := form.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return form, nil
}

func (fd FieldDefinition) text() string {
	if len(fd.Prompt) > 0 {
		return fd.Prompt
	}
	return fd.Name
}

func (fd FieldDefinition) fieldOptions() []prompt.FieldOption {
	if fd.Optional != nil && *fd.Optional {
		return []prompt.FieldOption{prompt.Optional()}
	}
	return []prompt.FieldOption{prompt.Required()}
}

func (fd FieldDefinition) stringValidator() validate.Validator[string] {
	var all []validate.Validator[string]
	if fd.NotEmpty {
		all = append(all, validate.NotEmpty())
	}
	if fd.MinLength > 0 {
		all = append(all, validate.MinLength(fd.MinLength))
	}
	if fd.MaxLength > 0 {
		all = append(all, validate.MaxLength(fd.MaxLength))
	}
	if len(fd.Prefix) > 0 {
		prefix := fd.Prefix
		all = append(all, validate.New(fmt.Sprintf("Input must start with '%s'", prefix), func(val string) bool {
			return strings.HasPrefix(val, prefix)
		}))
	}
	return allOf(all)
}

func (fd FieldDefinition) numberValidator() validate.Validator[float64] {
	var all []validate.Validator[float64]
	if fd.Positive {
		all = append(all, validate.IsPositive[float64]())
	}
	switch {
	case fd.Min != nil && fd.Max != nil:
		all = append(all, validate.InRange(*fd.Min, *fd.Max))
	case fd.Min != nil:
		lo := *fd.Min
		all = append(all, validate.New(fmt.Sprintf("Value must be at least %v", lo), func(val float64) bool {
			return val >= lo
		}))
	case fd.Max != nil:
		hi := *fd.Max
		all = append(all, validate.New(fmt.Sprintf("Value must be at most %v", hi), func(val float64) bool {
			return val <= hi
		}))
	}
	return allOf(all)
}

func allOf[T any](all []validate.Validator[T]) validate.Validator[T] {
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return validate.And(all[0], all[1], all[2:]...)
	}
}

func (fd FieldDefinition) hasTextRules() bool {
	return fd.NotEmpty || fd.MinLength > 0 || fd.MaxLength > 0 || len(fd.Prefix) > 0
}

func (fd FieldDefinition) hasNumberRules() bool {
	return fd.Positive || fd.Min != nil || fd.Max != nil
}

var numericKinds = map[parse.Kind]bool{
	parse.KindInt: true, parse.KindInt8: true, parse.KindInt16: true, parse.KindInt32: true, parse.KindInt64: true,
	parse.KindUint: true, parse.KindUint8: true, parse.KindUint16: true, parse.KindUint32: true, parse.KindUint64: true,
	parse.KindFloat32: true, parse.KindFloat64: true,
}

// kindValidator applies text or number rules to a value parsed by the registry.
// Rules that can't apply to kind are an error.
func (fd FieldDefinition) kindValidator(kind parse.Kind) (validate.Validator[any], error) {
	switch {
	case kind == parse.KindString:
		if fd.hasNumberRules() {
			return nil, errors.New("min, max, and positive only apply to numbers")
		}
		return convert(fd.stringValidator(), func(val any) (string, bool) {
			sval, ok := val.(string)
			return sval, ok
		}), nil
	case numericKinds[kind]:
		if fd.hasTextRules() {
			return nil, errors.New("not_empty, min_length, max_length, and prefix only apply to text")
		}
		return convert(fd.numberValidator(), toFloat), nil
	default:
		if fd.hasTextRules() || fd.hasNumberRules() {
			return nil, fmt.Errorf("%s fields don't accept value rules", kind)
		}
		return nil, nil
	}
}

// converted checks a type-erased value with a typed validator.
type converted[T any] struct {
	inner   validate.Validator[T]
	convert func(any) (T, bool)
}

func (c *converted[T]) Check(val any) error {
	tval, ok := c.convert(val)
	if !ok {
		return validate.Reject("Unexpected value '%v'", val)
	}
	return c.inner.Check(tval)
}

func convert[T any](inner validate.Validator[T], fn func(any) (T, bool)) validate.Validator[any] {
	if inner == nil {
		return nil
	}
	return &converted[T]{inner: inner, convert: fn}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// checkKeys rejects keys that the field's type would otherwise ignore.
func (fd FieldDefinition) checkKeys() error {
	switch fd.Type {
	case TypeChoice, TypeMultiChoice:
	default:
		if len(fd.Options) > 0 {
			return errors.New("options only apply to choice and multi_choice fields")
		}
	}
	switch fd.Type {
	case TypeChoice, TypeMultiChoice, TypeOptional, TypeValidated:
		if fd.Default != nil {
			return fmt.Errorf("%s fields don't accept a default", fd.Type)
		}
	}
	switch fd.Type {
	case TypeText, "", TypeValidated:
		if fd.hasNumberRules() {
			return errors.New("min, max, and positive only apply to numbers")
		}
	case TypeNumber:
		if fd.hasTextRules() {
			return errors.New("not_empty, min_length, max_length, and prefix only apply to text")
		}
	case TypeBoolean, TypeChoice, TypeMultiChoice, TypeOptional:
		if fd.hasTextRules() || fd.hasNumberRules() || len(fd.Message) > 0 {
			return fmt.Errorf("%s fields don't accept value rules", fd.Type)
		}
	}
	return nil
}

func formatNumber(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func (fd FieldDefinition) addTo(form *prompt.Form, registry *parse.Registry) error {
	if err := fd.checkKeys(); err != nil {
		return err
	}
	opts := fd.fieldOptions()
	switch fd.Type {
	case TypeText, "":
		textOpts := []prompt.Option[string]{prompt.WithMessage[string](fd.Message)}
		if v := fd.stringValidator(); v != nil {
			textOpts = append(textOpts, prompt.WithValidator(v))
		}
		if fd.Default != nil {
			textOpts = append(textOpts, prompt.WithDefault(*fd.Default))
		}
		prompt.AddField(form, fd.Name, prompt.New(fd.text(), parse.String(), textOpts...), nil, opts...)
	case TypeValidated:
		v := fd.stringValidator()
		if v == nil {
			return errors.New("validated fields need at least one of not_empty, min_length, max_length, or prefix")
		}
		form.Validated(fd.Name, fd.text(), v, fd.Message, opts...)
	case TypeNumber:
		numOpts := []prompt.Option[float64]{prompt.WithMessage[float64](fd.Message)}
		if v := fd.numberValidator(); v != nil {
			numOpts = append(numOpts, prompt.WithValidator(v))
		}
		if fd.Default != nil {
			def, err := parse.Float[float64]().Parse(*fd.Default)
			if err != nil {
				return fmt.Errorf("bad default: %w", err)
			}
			numOpts = append(numOpts, prompt.WithDefault(def))
		}
		prompt.AddField(form, fd.Name, prompt.New(fd.text(), parse.Float[float64](), numOpts...), formatNumber, opts...)
	case TypeBoolean:
		if fd.Default != nil {
			def, err := parse.Bool().Parse(*fd.Default)
			if err != nil {
				return fmt.Errorf("bad default: %w", err)
			}
			spec := prompt.New(fd.text()+prompt.ConfirmSuffix, parse.Bool(), prompt.WithDefault(def))
			prompt.AddField(form, fd.Name, spec, strconv.FormatBool, opts...)
			return nil
		}
		form.Boolean(fd.Name, fd.text(), opts...)
	case TypeChoice:
		if len(fd.Options) == 0 {
			return prompt.ErrNoOptions
		}
		form.Choice(fd.Name, fd.text(), fd.Options, opts...)
	case TypeMultiChoice:
		form.MultiChoice(fd.Name, fd.text(), fd.Options, opts...)
	case TypeOptional:
		// Optional unless optional is explicitly false, which stores an empty answer when skipped.
		if fd.Optional == nil {
			opts = nil
		}
		form.OptionalText(fd.Name, fd.text(), opts...)
	default:
		kind := parse.Kind(fd.Type)
		if !registry.Has(kind) {
			return fmt.Errorf("%w: %s", parse.ErrUnknownKind, fd.Type)
		}
		parser := parse.New(string(kind), func(raw string) (any, error) {
			return registry.Parse(raw, kind)
		})
		kindOpts := []prompt.Option[any]{prompt.WithMessage[any](fd.Message)}
		v, err := fd.kindValidator(kind)
		if err != nil {
			return err
		}
		if v != nil {
			kindOpts = append(kindOpts, prompt.WithValidator(v))
		}
		if fd.Default != nil {
			def, err := registry.Parse(*fd.Default, kind)
			if err != nil {
				return fmt.Errorf("bad default: %w", err)
			}
			kindOpts = append(kindOpts, prompt.WithDefault(def))
		}
		prompt.AddField(form, fd.Name, prompt.New(fd.text(), parser, kindOpts...), nil, opts...)
	}
	return nil
}

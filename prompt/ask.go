package prompt

import (
	"fmt"

	"github.com/saylorsolutions/ask/parse"
)

var (
	ConfirmSuffix          = " (y/n)" // ConfirmSuffix is appended to the text of a [Confirm] prompt.
	MultiSelectInstruction = "Enter numbers separated by commas (e.g., 1,3,5) or '" + parse.SelectAllToken + "' or '" + parse.SelectNoneToken + "':"
)

// Ask resolves a single value with parser, retrying until it's accepted.
func Ask[T any](r *Resolver, text string, parser parse.Parser[T], opts ...Option[T]) (T, error) {
	return Resolve(r, New(text, parser, opts...))
}

// AskDefault is the same as [Ask], but accepts def when the user enters an empty line.
func AskDefault[T any](r *Resolver, text string, parser parse.Parser[T], def T, opts ...Option[T]) (T, error) {
	opts = append([]Option[T]{WithDefault(def)}, opts...)
	return Resolve(r, New(text, parser, opts...))
}

// Confirm asks a yes or no question, see [parse.Bool] for the accepted answers.
func Confirm(r *Resolver, text string) (bool, error) {
	return Ask(r, text+ConfirmSuffix, parse.Bool())
}

// Choose shows a numbered menu of options, and resolves the one the user picks by number or label.
// Returns [ErrNoOptions] if there's nothing to choose from.
func Choose(r *Resolver, text string, options ...string) (parse.Selection, error) {
	if len(options) == 0 {
		return parse.Selection{}, fmt.Errorf("%w: %s", ErrNoOptions, text)
	}
	return Resolve(r, New(text, parse.Choice(options...), WithMenu[parse.Selection](options, "")))
}

// MultiSelect shows a numbered menu of options, and resolves any number of them.
// See [parse.MultiChoice] for the accepted input.
// An empty set of options resolves to an empty selection without reading input.
func MultiSelect(r *Resolver, text string, options ...string) ([]parse.Selection, error) {
	if len(options) == 0 {
		return []parse.Selection{}, nil
	}
	return Resolve(r, New(text, parse.MultiChoice(options...), WithMenu[[]parse.Selection](options, MultiSelectInstruction)))
}

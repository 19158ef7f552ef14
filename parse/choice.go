package parse

import (
	"strconv"
	"strings"
)

// Selection is an option picked from a list.
type Selection struct {
	Index int // Index is the 0-based position of the option in its declared list.
	Label string
}

func (s Selection) String() string {
	return s.Label
}

var (
	SelectAllToken  = "all"  // SelectAllToken selects every option with [MultiChoice].
	SelectNoneToken = "none" // SelectNoneToken selects nothing with [MultiChoice].
)

// Labels returns the labels of the given selections, in the same order.
func Labels(selections []Selection) []string {
	labels := make([]string, len(selections))
	for i, sel := range selections {
		labels[i] = sel.Label
	}
	return labels
}

func matchOption(options []string, token string) (int, bool) {
	token = strings.TrimSpace(token)
	if idx, err := strconv.Atoi(token); err == nil && idx >= 1 && idx <= len(options) {
		return idx - 1, true
	}
	for i, opt := range options {
		if strings.EqualFold(opt, token) {
			return i, true
		}
	}
	return 0, false
}

// Choice matches input against options, either as a 1-based index or an exact label compared case-insensitive.
func Choice(options ...string) Parser[Selection] {
	opts := make([]string, len(options))
	copy(opts, options)
	return New("choice", func(raw string) (Selection, error) {
		idx, ok := matchOption(opts, raw)
		if !ok {
			return Selection{}, &UnknownChoiceError{Input: strings.TrimSpace(raw), Options: opts}
		}
		return Selection{Index: idx, Label: opts[idx]}, nil
	})
}

// MultiChoice matches comma separated indices or labels against options, see [Choice].
// The [SelectAllToken] and [SelectNoneToken] select every option or nothing, and so does blank input.
// Duplicates are collapsed, and the result is always in declaration order rather than input order.
func MultiChoice(options ...string) Parser[[]Selection] {
	opts := make([]string, len(options))
	copy(opts, options)
	return New("list of choices", func(raw string) ([]Selection, error) {
		trimmed := strings.TrimSpace(raw)
		selected := make([]bool, len(opts))
		switch {
		case len(trimmed) == 0, strings.EqualFold(trimmed, SelectNoneToken):
			return []Selection{}, nil
		case strings.EqualFold(trimmed, SelectAllToken):
			for i := range selected {
				selected[i] = true
			}
		default:
			for _, tok := range clean(strings.Split(trimmed, ",")) {
				idx, ok := matchOption(opts, tok)
				if !ok {
					return nil, &UnknownChoiceError{Input: tok, Options: opts}
				}
				selected[idx] = true
			}
		}
		selections := []Selection{}
		for i, sel := range selected {
			if sel {
				selections = append(selections, Selection{Index: i, Label: opts[i]})
			}
		}
		return selections, nil
	})
}

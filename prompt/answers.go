package prompt

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Answers maps [Form] field names to accepted values, in the order the fields were declared.
// Optional fields that weren't answered are absent.
//
// Answers can't be changed once returned from [Form.Collect].
type Answers struct {
	values *orderedmap.OrderedMap[string, string]
}

func newAnswers() *Answers {
	return &Answers{values: orderedmap.New[string, string]()}
}

func (a *Answers) set(name, value string) {
	a.values.Set(name, value)
}

// Get returns the value for a field, and false if the field is absent.
func (a *Answers) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.values.Get(name)
}

// Has reports whether the field has a value.
func (a *Answers) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of answered fields.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return a.values.Len()
}

// Keys returns answered field names in declaration order.
func (a *Answers) Keys() []string {
	keys := make([]string, 0, a.Len())
	for name := range a.All() {
		keys = append(keys, name)
	}
	return keys
}

// All iterates answered fields in declaration order.
func (a *Answers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map copies answers into a map, which loses ordering.
func (a *Answers) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for name, value := range a.All() {
		m[name] = value
	}
	return m
}

// MarshalJSON encodes answers as a JSON object with keys in declaration order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return a.values.MarshalJSON()
}

// MarshalYAML encodes answers as a YAML mapping with keys in declaration order.
// Every value is tagged as a string, so answers like "true" or "8080" keep their type when read back.
func (a *Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, value := range a.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	return node, nil
}

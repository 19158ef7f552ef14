package prompt

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/ask/input"
	"github.com/saylorsolutions/ask/parse"
	"github.com/saylorsolutions/ask/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupForm() *Form {
	return NewForm().
		Text("name", "Project name").
		Number("version", "Version").
		Boolean("private", "Private").
		Choice("license", "License", []string{"MIT", "Apache-2.0", "GPL-3.0"}).
		MultiChoice("features", "Features", []string{"Auth", "Logging", "Caching"}).
		OptionalText("description", "Description").
		Validated("owner", "Owner", validate.MinLength(3), "Owner needs at least 3 characters")
}

func TestForm_Collect(t *testing.T) {
	r, script, out := testResolver(t,
		"ask",
		"1.50",
		"YES",
		"apache-2.0",
		"3, 1, 3",
		"skip",
		"me",
		"saylor",
	)

	answers, err := setupForm().Collect(r)
	require.NoError(t, err)
	assert.Equal(t, 0, script.Remaining())
	assert.Equal(t, []string{"name", "version", "private", "license", "features", "owner"}, answers.Keys())

	expected := map[string]string{
		"name":     "ask",
		"version":  "1.5",
		"private":  "true",
		"license":  "Apache-2.0",
		"features": "Auth, Caching",
		"owner":    "saylor",
	}
	assert.Equal(t, expected, answers.Map())
	assert.False(t, answers.Has("description"))
	assert.Contains(t, out.String(), "Owner needs at least 3 characters")
	assert.Contains(t, out.String(), "License:\n  1. MIT\n  2. Apache-2.0\n  3. GPL-3.0\nChoose (1-3): ")
	assert.Contains(t, out.String(), MultiSelectInstruction)
}

func TestForm_ChoiceRetry(t *testing.T) {
	r, _, out := testResolver(t, "4", "BSD", "2")

	answers, err := NewForm().Choice("license", "License", []string{"MIT", "Apache-2.0"}).Collect(r)
	require.NoError(t, err)
	val, ok := answers.Get("license")
	assert.True(t, ok)
	assert.Equal(t, "Apache-2.0", val)
	assert.Equal(t, 2, strings.Count(out.String(), "is not a valid option"))
}

func TestForm_MultiChoiceSentinels(t *testing.T) {
	options := []string{"Auth", "Logging", "Caching"}
	tests := map[string]struct {
		line     string
		expected string
	}{
		"All":       {line: "all", expected: "Auth, Logging, Caching"},
		"None":      {line: "none", expected: ""},
		"Labels":    {line: "caching,auth", expected: "Auth, Caching"},
		"Duplicate": {line: "2,2,logging", expected: "Logging"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r, _, _ := testResolver(t, tc.line)
			answers, err := NewForm().MultiChoice("features", "Features", options).Collect(r)
			require.NoError(t, err)
			val, ok := answers.Get("features")
			assert.True(t, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestForm_EndOfInput(t *testing.T) {
	r, _, _ := testResolver(t)

	answers, err := NewForm().Text("name", "Project name").Collect(r)
	assert.Nil(t, answers, "No partial answers should be returned")
	assert.ErrorIs(t, err, input.ErrEndOfInput)
	assert.True(t, IsFieldError(err, "name"))
	assert.False(t, IsFieldError(err, "other"))
}

func TestForm_RequiredFailureAborts(t *testing.T) {
	r, _, _ := testResolver(t, "ask", "abc")

	answers, err := NewForm().
		Text("name", "Project name").
		Number("version", "Version").
		Text("owner", "Owner").
		TryCollect(r)
	assert.Nil(t, answers)
	assert.ErrorIs(t, err, parse.ErrParse)
	assert.EqualError(t, err, "field 'version': cannot parse 'abc' as decimal number")
}

func TestForm_OptionalFailure(t *testing.T) {
	r, _, _ := testResolver(t, "ask", "abc")

	answers, err := NewForm().
		Text("name", "Project name").
		Number("version", "Version", Optional()).
		Text("owner", "Owner", Optional()).
		TryCollect(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, answers.Keys())
	assert.False(t, answers.Has("version"))
	assert.False(t, answers.Has("owner"), "End of input should leave an optional field absent")
}

func TestForm_OptionalText(t *testing.T) {
	tests := map[string]struct {
		line     string
		opts     []FieldOption
		present  bool
		expected string
	}{
		"Answered":         {line: "A prompt library", present: true, expected: "A prompt library"},
		"Skipped":          {line: "none"},
		"Blank":            {line: ""},
		"Required skipped": {line: "-", opts: []FieldOption{Required()}, present: true, expected: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r, _, _ := testResolver(t, tc.line)
			answers, err := NewForm().OptionalText("description", "Description", tc.opts...).Collect(r)
			require.NoError(t, err)
			val, ok := answers.Get("description")
			assert.Equal(t, tc.present, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestForm_Invalid(t *testing.T) {
	tests := map[string]*Form{
		"Empty name":     NewForm().Text("  ", "Name"),
		"Duplicate name": NewForm().Text("name", "Name").Text("name", "Other name"),
		"No options":     NewForm().Choice("license", "License", nil),
	}
	for name, form := range tests {
		t.Run(name, func(t *testing.T) {
			r, script, _ := testResolver(t, "a", "b")
			answers, err := form.Collect(r)
			assert.Nil(t, answers)
			assert.ErrorIs(t, err, ErrInvalidForm)
			assert.ErrorIs(t, form.Err(), ErrInvalidForm)
			assert.Equal(t, 2, script.Remaining(), "Invalid forms should not read input")
		})
	}
}

func TestForm_MultiChoiceNoOptions(t *testing.T) {
	r, script, _ := testResolver(t, "1")
	answers, err := NewForm().MultiChoice("features", "Features", nil).Collect(r)
	require.NoError(t, err)
	val, ok := answers.Get("features")
	assert.True(t, ok)
	assert.Equal(t, "", val)
	assert.Equal(t, 1, script.Remaining())
}

func TestAddField(t *testing.T) {
	r, _, _ := testResolver(t, "80", "8080", "a b")
	spec := New("Port", parse.Uint[uint16](), WithValidator(validate.InRange[uint16](1024, 65535)))
	form := NewForm()
	AddField(form, "port", spec, nil)
	AddField(form, "tags", New("Tags", parse.Slice(parse.String())), func(tags []string) string {
		return strings.Join(tags, "+")
	})
	assert.Equal(t, []string{"port", "tags"}, form.Names())

	answers, err := form.Collect(r)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"port": "8080", "tags": "a+b"}, answers.Map())
}

func TestForm_Validated(t *testing.T) {
	r, _, out := testResolver(t, "", "ok")
	answers, err := NewForm().Validated("owner", "Owner", validate.NotEmpty(), "").Collect(r)
	require.NoError(t, err)
	val, _ := answers.Get("owner")
	assert.Equal(t, "ok", val)
	assert.Contains(t, out.String(), "Input cannot be empty", "Validator message should be used without an override")

	assert.Panics(t, func() {
		NewForm().Validated("owner", "Owner", nil, "")
	})
}

package prompt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testAnswers() *Answers {
	a := newAnswers()
	a.set("name", "ask")
	a.set("port", "8080")
	a.set("private", "true")
	a.set("features", "Auth, Caching")
	return a
}

func TestAnswers_Order(t *testing.T) {
	a := testAnswers()
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []string{"name", "port", "private", "features"}, a.Keys())

	var visited []string
	for name := range a.All() {
		visited = append(visited, name)
		if name == "port" {
			break
		}
	}
	assert.Equal(t, []string{"name", "port"}, visited, "Iteration should stop when yield returns false")
}

func TestAnswers_Get(t *testing.T) {
	a := testAnswers()
	val, ok := a.Get("port")
	assert.True(t, ok)
	assert.Equal(t, "8080", val)

	_, ok = a.Get("missing")
	assert.False(t, ok)
	assert.False(t, a.Has("missing"))
}

func TestAnswers_Nil(t *testing.T) {
	var a *Answers
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Has("name"))
	assert.Empty(t, a.Keys())
	data, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestAnswers_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(testAnswers())
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ask","port":"8080","private":"true","features":"Auth, Caching"}`, string(data))
}

func TestAnswers_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(testAnswers())
	require.NoError(t, err)
	expected := `name: ask
port: "8080"
private: "true"
features: Auth, Caching
`
	assert.Equal(t, expected, string(data))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "8080", decoded["port"], "Values should stay strings")
	assert.Equal(t, "true", decoded["private"])
}

package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReader_ReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("first\r\n\nthird"))

	line, err := r.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "", line, "Empty line should not be end of input")

	line, err = r.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "third", line, "Unterminated final line should be returned")

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, ErrEndOfInput)
	_, err = r.ReadLine()
	assert.ErrorIs(t, err, ErrEndOfInput, "Should stay closed")
}

func TestReader_Empty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.ReadLine()
	assert.ErrorIs(t, err, ErrEndOfInput)
}

type failingReader struct{}

var errIntentional = errors.New("intentional error")

func (failingReader) Read([]byte) (int, error) {
	return 0, errIntentional
}

func TestReader_ReadError(t *testing.T) {
	r := NewReader(failingReader{})
	_, err := r.ReadLine()
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, errIntentional)
	assert.False(t, errors.Is(err, ErrEndOfInput))
}

func TestReader_IsTerminal(t *testing.T) {
	assert.False(t, NewReader(strings.NewReader("")).IsTerminal())
}

func TestNewReader_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewReader(nil)
	})
}

func TestScript(t *testing.T) {
	lines := []string{"a", "", "c"}
	s := NewScript(lines...)
	lines[0] = "mutated"
	assert.Equal(t, 3, s.Remaining())

	for _, expected := range []string{"a", "", "c"} {
		line, err := s.ReadLine()
		assert.NoError(t, err)
		assert.Equal(t, expected, line)
	}
	assert.Equal(t, 3, s.Consumed())
	assert.Equal(t, 0, s.Remaining())

	_, err := s.ReadLine()
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.Equal(t, 3, s.Consumed(), "Reading past the end should not count")
}

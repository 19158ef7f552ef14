package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	ErrEndOfInput = errors.New("end of input") // ErrEndOfInput is returned once the input channel is closed and no further lines can arrive.
	ErrRead       = errors.New("failed to read input")
)

// LineSource reads one logical line of text at a time.
//
// ReadLine blocks until a full line is available, and returns it without its line terminator.
// When the source is exhausted, [ErrEndOfInput] is returned, which is distinct from an empty line.
//
// A LineSource is expected to have exactly one reader at a time.
// Implementations in this package are not safe for concurrent use, and do not try to be.
type LineSource interface {
	ReadLine() (string, error)
}

var (
	_ LineSource = (*Reader)(nil)
	_ LineSource = (*Script)(nil)
)

// Reader is the live [LineSource], reading newline delimited text from an [io.Reader].
type Reader struct {
	scanner *bufio.Scanner
	fd      int
	hasFd   bool
	closed  bool
}

// NewReader creates a [Reader] over the given [io.Reader].
// If r is an [*os.File], then [Reader.IsTerminal] will report whether it's attached to a terminal.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("nil reader")
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	reader := &Reader{scanner: scanner}
	if f, ok := r.(*os.File); ok {
		reader.fd = int(f.Fd())
		reader.hasFd = true
	}
	return reader
}

// Stdin returns a [Reader] bound to the process' standard input.
func Stdin() *Reader {
	return NewReader(os.Stdin)
}

// ReadLine reads the next line from the underlying reader.
// A trailing carriage return is removed along with the newline.
func (r *Reader) ReadLine() (string, error) {
	if r.closed {
		return "", ErrEndOfInput
	}
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	r.closed = true
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return "", ErrEndOfInput
}

// IsTerminal reports whether the underlying reader is an interactive terminal.
// Readers that are not backed by a file are never considered a terminal.
func (r *Reader) IsTerminal() bool {
	if !r.hasFd {
		return false
	}
	return term.IsTerminal(r.fd)
}

// Script is a [LineSource] that produces a fixed sequence of lines, then reports [ErrEndOfInput].
// This is mostly useful for tests and non-interactive automation, where an unbounded retry loop must still terminate.
type Script struct {
	lines []string
	pos   int
}

// NewScript creates a [Script] that will produce each of the given lines in order.
func NewScript(lines ...string) *Script {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Script{lines: cp}
}

func (s *Script) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", ErrEndOfInput
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Consumed returns the number of lines read so far.
func (s *Script) Consumed() int {
	return s.pos
}

// Remaining returns the number of lines that have yet to be read.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}

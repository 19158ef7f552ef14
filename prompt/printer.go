package prompt

import (
	"fmt"
	"io"
	"os"
)

// Printer renders prompts, menus, and problems for the user.
// Output goes to STDERR by default, so it doesn't mix with program output on STDOUT.
type Printer struct {
	out         io.Writer
	errorPrefix string
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr, errorPrefix: DefaultErrorPrefix}
}

// Redirect sends all output to writer.
func (p *Printer) Redirect(writer io.Writer) {
	if writer == nil {
		writer = io.Discard
	}
	p.out = writer
}

// SetErrorPrefix changes the prefix of problem messages.
func (p *Printer) SetErrorPrefix(prefix string) {
	p.errorPrefix = prefix
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Prompt writes the prompt text, with a hint in brackets if it's not empty.
func (p *Printer) Prompt(text, hint string) {
	if len(hint) > 0 {
		p.Printf("%s [%s]: ", text, hint)
		return
	}
	p.Printf("%s: ", text)
}

// Menu writes a title followed by a numbered list of options.
func (p *Printer) Menu(title string, options []string) {
	p.Printf("%s:\n", title)
	for i, opt := range options {
		p.Printf("  %d. %s\n", i+1, opt)
	}
}

// Problem writes the reason that an attempt wasn't accepted.
func (p *Printer) Problem(err error) {
	if len(p.errorPrefix) > 0 {
		p.Printf("%s %v\n", p.errorPrefix, err)
		return
	}
	p.Println(err)
}

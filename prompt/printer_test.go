package prompt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter()
	p.Redirect(&buf)

	p.Prompt("Name", "")
	p.Prompt("Host", "localhost")
	p.Menu("License", []string{"MIT", "BSD"})
	p.Problem(errors.New("bad input"))
	p.SetErrorPrefix("")
	p.Problem(errors.New("bad input"))

	expected := "Name: Host [localhost]: License:\n  1. MIT\n  2. BSD\n" + DefaultErrorPrefix + " bad input\nbad input\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_RedirectNil(t *testing.T) {
	p := NewPrinter()
	p.Redirect(nil)
	assert.NotPanics(t, func() {
		p.Println("discarded")
	})
}

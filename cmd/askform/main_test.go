package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saylorsolutions/ask/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallForm = `
title: Service
fields:
  - name: host
    prompt: Host
    default: localhost
  - name: port
    prompt: Port
    type: uint16
  - name: tls
    prompt: Use TLS
    type: boolean
`

func writeForm(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))
	return path
}

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, input.NewReader(strings.NewReader(stdin)), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_JSON(t *testing.T) {
	path := writeForm(t, smallForm)
	code, stdout, stderr := runWith(t, "\n8080\ny\n", path)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "{\n  \"host\": \"localhost\",\n  \"port\": \"8080\",\n  \"tls\": \"true\"\n}\n", stdout)
	assert.Contains(t, stderr, "Service\n")
	assert.Contains(t, stderr, "Host [localhost]: ")
}

func TestRun_YAML(t *testing.T) {
	path := writeForm(t, smallForm)
	code, stdout, stderr := runWith(t, "db\n5432\nno\n", "--format", "YAML", path)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "host: db\nport: \"5432\"\ntls: \"false\"\n", stdout)
}

func TestRun_StrictWithoutTerminal(t *testing.T) {
	path := writeForm(t, smallForm)
	code, stdout, stderr := runWith(t, "\nhttp\n8080\ny\n", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout, "No partial answers should be written")
	assert.Contains(t, stderr, "askform: field 'port': cannot parse 'http'")
}

func TestRun_Interactive(t *testing.T) {
	path := writeForm(t, smallForm)
	code, stdout, stderr := runWith(t, "\nhttp\n8080\ny\n", "--interactive", path)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"port": "8080"`)
	assert.Contains(t, stderr, "cannot parse 'http'")
}

func TestRun_MaxAttempts(t *testing.T) {
	path := writeForm(t, smallForm)
	code, _, stderr := runWith(t, "\na\nb\n8080\ny\n", "-i", "--max-attempts", "2", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "max attempts exceeded after 2 attempts")
}

func TestRun_EndOfInput(t *testing.T) {
	path := writeForm(t, smallForm)
	code, stdout, stderr := runWith(t, "\n", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "field 'port': end of input")
}

func TestRun_Verbose(t *testing.T) {
	path := writeForm(t, smallForm)
	code, _, stderr := runWith(t, "\n8080\ny\n", "-v", path)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Collecting form")
	assert.Contains(t, stderr, "Prompt transition")
}

func TestRun_Kinds(t *testing.T) {
	code, stdout, _ := runWith(t, "", "--kinds")
	assert.Equal(t, 0, code)
	assert.Contains(t, strings.Split(stdout, "\n"), "uint16")
}

func TestRun_Usage(t *testing.T) {
	tests := map[string][]string{
		"No args":             nil,
		"Too many args":       {"a.yaml", "b.yaml"},
		"Bad format":          {"--format", "xml", "form.yaml"},
		"Unknown flag":        {"--nope", "form.yaml"},
		"Strict and interact": {"--strict", "-i", "form.yaml"},
		"Negative attempts":   {"--max-attempts", "-1", "form.yaml"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runWith(t, "", args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "USAGE:")
			assert.Contains(t, stderr, "askform: usage error:")
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runWith(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "askform [FLAGS] FORM.yaml")
	assert.Contains(t, stderr, "--max-attempts")
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runWith(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to open form definition")
}

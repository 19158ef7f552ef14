package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/saylorsolutions/ask/input"
	"github.com/saylorsolutions/ask/parse"
	"github.com/saylorsolutions/ask/prompt"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const usageText = `Collects answers to a form defined in YAML, and prints them to STDOUT.

USAGE:
askform [FLAGS] FORM.yaml

Prompts are written to STDERR, and answers are read from STDIN one line at a time.
When STDIN is not a terminal, the first bad answer fails the form unless --interactive is passed.

ENVIRONMENT
  ASK_MAX_ATTEMPTS      Default for --max-attempts
  ASK_NON_INTERACTIVE   Same as --strict when true
  ASK_ERROR_PREFIX      Printed before problems with an answer
`

// usageError signals that usage information should be shown along with the error.
type usageError struct {
	wrapped error
}

func (e *usageError) Error() string {
	return "usage error: " + e.wrapped.Error()
}

func (e *usageError) Unwrap() error {
	return e.wrapped
}

func newUsageError(format string, args ...any) error {
	return &usageError{wrapped: fmt.Errorf(format, args...)}
}

type options struct {
	format      string
	strict      bool
	interactive bool
	maxAttempts int
	verbose     bool
	kinds       bool
	help        bool
	formPath    string
}

func main() {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		_, _ = fmt.Fprintln(os.Stderr)
		os.Exit(130)
	}()
	os.Exit(run(os.Args[1:], input.Stdin(), os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*flag.FlagSet, *options, error) {
	opts := new(options)
	flags := flag.NewFlagSet("askform", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.format, "format", "f", FormatJSON, "Output format, either json or yaml")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on the first bad answer instead of asking again")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Ask again after a bad answer, even if STDIN is not a terminal")
	flags.IntVar(&opts.maxAttempts, "max-attempts", 0, "Fail a prompt after this many answers, 0 means no limit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log each prompt transition to STDERR")
	flags.BoolVar(&opts.kinds, "kinds", false, "Print the value types that can be used as a field type, and exit")
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "%s\nFLAGS\n%s", usageText, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		return flags, nil, newUsageError("%w", err)
	}
	if opts.help || opts.kinds {
		return flags, opts, nil
	}
	switch strings.ToLower(opts.format) {
	case FormatJSON, FormatYAML:
		opts.format = strings.ToLower(opts.format)
	default:
		return flags, nil, newUsageError("unknown format '%s'", opts.format)
	}
	if opts.strict && opts.interactive {
		return flags, nil, newUsageError("--strict and --interactive can't be used together")
	}
	if opts.maxAttempts < 0 {
		return flags, nil, newUsageError("--max-attempts should be >= 0")
	}
	if flags.NArg() != 1 {
		return flags, nil, newUsageError("expected exactly one form definition, got %d arguments", flags.NArg())
	}
	opts.formPath = flags.Arg(0)
	return flags, opts, nil
}

func run(args []string, src *input.Reader, stdout, stderr io.Writer) int {
	flags, opts, err := parseFlags(args, stderr)
	if err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			flags.Usage()
		}
		_, _ = fmt.Fprintln(stderr, "askform:", err)
		return 1
	}
	if opts.help {
		flags.Usage()
		return 0
	}
	registry := parse.Defaults()
	if opts.kinds {
		for _, kind := range registry.Kinds() {
			_, _ = fmt.Fprintln(stdout, kind)
		}
		return 0
	}

	log := newLogger(stderr, opts.verbose)
	if err := collect(opts, registry, src, stdout, stderr, log); err != nil {
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprintln(stderr, "askform:", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func resolverConfig(opts *options, terminal bool) (prompt.Config, error) {
	cfg, err := prompt.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if opts.maxAttempts > 0 {
		cfg.MaxAttempts = opts.maxAttempts
	}
	switch {
	case opts.interactive:
		cfg.NonInteractive = false
	case opts.strict, !terminal:
		cfg.NonInteractive = true
	}
	return cfg, nil
}

func collect(opts *options, registry *parse.Registry, src *input.Reader, stdout, stderr io.Writer, log *slog.Logger) error {
	f, err := os.Open(opts.formPath)
	if err != nil {
		return fmt.Errorf("failed to open form definition: %w", err)
	}
	def, err := LoadDefinition(f)
	_ = f.Close()
	if err != nil {
		return err
	}
	form, err := def.Form(registry)
	if err != nil {
		return err
	}

	cfg, err := resolverConfig(opts, src.IsTerminal())
	if err != nil {
		return err
	}
	printer := prompt.NewPrinter()
	printer.Redirect(stderr)
	r := prompt.NewResolver(src,
		prompt.WithConfig(cfg),
		prompt.WithPrinter(printer),
		prompt.WithLogger(log),
	)
	log.Debug("Collecting form", "path", opts.formPath, "fields", len(form.Names()), "non_interactive", cfg.NonInteractive, "max_attempts", cfg.MaxAttempts)
	if len(def.Title) > 0 {
		printer.Println(def.Title)
	}
	answers, err := form.Collect(r)
	if err != nil {
		return err
	}
	return writeAnswers(stdout, opts.format, answers)
}

func writeAnswers(w io.Writer, format string, answers *prompt.Answers) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(answers); err != nil {
			return fmt.Errorf("failed to write answers: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(answers); err != nil {
			return fmt.Errorf("failed to write answers: %w", err)
		}
		return nil
	}
}

package prompt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/saylorsolutions/ask/input"
)

// Resolver asks for values from a [input.LineSource], rendering prompts with a [Printer].
//
// A Resolver reads from a single source, and must not be used from more than one goroutine at a time.
type Resolver struct {
	src     input.LineSource
	printer *Printer
	log     *slog.Logger
	cfg     Config
	last    Outcome
}

// ResolverOption configures a [Resolver].
type ResolverOption func(*Resolver)

// WithPrinter overrides the [Printer] used to render prompts.
func WithPrinter(printer *Printer) ResolverOption {
	return func(r *Resolver) {
		if printer != nil {
			r.printer = printer
		}
	}
}

// WithLogger sets a logger that will receive debug level records for each prompt transition.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithConfig applies a [Config] to the [Resolver].
func WithConfig(cfg Config) ResolverOption {
	return func(r *Resolver) {
		r.cfg = cfg
	}
}

// WithMaxAttempts bounds the number of lines read for a single prompt.
// A value of 0 removes the bound.
func WithMaxAttempts(n int) ResolverOption {
	return func(r *Resolver) {
		if n >= 0 {
			r.cfg.MaxAttempts = n
		}
	}
}

// NewResolver creates a [Resolver] reading from src.
// Passing a nil src will panic.
func NewResolver(src input.LineSource, opts ...ResolverOption) *Resolver {
	if src == nil {
		panic("nil line source")
	}
	r := &Resolver{
		src:     src,
		printer: NewPrinter(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:     DefaultConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.printer.SetErrorPrefix(r.cfg.ErrorPrefix)
	return r
}

// Printer returns the [Printer] used by this [Resolver].
func (r *Resolver) Printer() *Printer {
	return r.printer
}

// Outcome describes how the most recent prompt was resolved.
type Outcome struct {
	Prompt   string
	State    State   // State is the terminal state.
	Path     []State // Path is every state visited, starting with [StateAwaitInput].
	Attempts int     // Attempts is the number of lines read.
	Err      error
}

// LastOutcome returns the [Outcome] of the most recent prompt resolved by this [Resolver].
func (r *Resolver) LastOutcome() Outcome {
	return r.last
}

// Resolve asks for a value until one is accepted, the input source is exhausted, or the configured max attempts is reached.
// Parse failures and validation rejections are reported to the user, and the prompt is shown again.
//
// If the [Resolver] is configured as non-interactive, then this behaves the same as [TryResolve].
func Resolve[T any](r *Resolver, spec Spec[T]) (T, error) {
	return resolve(r, spec, !r.cfg.NonInteractive)
}

// TryResolve asks for a value once, returning the first parse or validation failure as an error instead of retrying.
// End of input is always returned as an error, matching [input.ErrEndOfInput].
func TryResolve[T any](r *Resolver, spec Spec[T]) (T, error) {
	return resolve(r, spec, false)
}

func resolve[T any](r *Resolver, spec Spec[T], retry bool) (T, error) {
	var zero T
	t, err := newTracker(spec.text, r.log)
	if err != nil {
		return zero, err
	}
	defer t.stop()

	val, err := run(r, spec, t, retry)
	r.last = Outcome{
		Prompt:   spec.text,
		State:    t.current(),
		Path:     t.res.path,
		Attempts: t.res.attempts,
		Err:      err,
	}
	if err != nil {
		return zero, err
	}
	return val, nil
}

func (r *Resolver) render(text, hint string, menu []string, instruction string) {
	if len(menu) == 0 {
		r.printer.Prompt(text, hint)
		return
	}
	r.printer.Menu(text, menu)
	if len(instruction) > 0 {
		r.printer.Println(instruction)
	}
	r.printer.Prompt(fmt.Sprintf("Choose (1-%d)", len(menu)), hint)
}

// run is the retry loop for a single prompt.
// Every return leaves the tracker in a terminal state.
func run[T any](r *Resolver, spec Spec[T], t *tracker, retry bool) (T, error) {
	var zero T
	fail := func(cause error) (T, error) {
		if err := t.to(eventFail, StateFailed, cause.Error()); err != nil {
			return zero, errors.Join(cause, err)
		}
		return zero, cause
	}
	// rejected moves to Retrying, and back to AwaitInput if another attempt is allowed.
	rejected := func(cause error) error {
		if !retry {
			_, err := fail(cause)
			return err
		}
		if err := t.to(eventRetry, StateRetrying, cause.Error()); err != nil {
			return err
		}
		r.printer.Problem(cause)
		if limit := r.cfg.MaxAttempts; limit > 0 && t.res.attempts >= limit {
			_, err := fail(&maxAttemptsError{attempts: t.res.attempts, lastErr: cause})
			return err
		}
		return t.to(eventAwait, StateAwaitInput, "")
	}

	for {
		r.render(spec.text, spec.defaultHint(), spec.menu, spec.instruction)
		line, err := r.src.ReadLine()
		if err != nil {
			r.log.Debug("Input closed while waiting for a line", "prompt", spec.text, "error", err)
			return fail(err)
		}
		t.res.attempts++
		line = strings.TrimSpace(line)

		if len(line) == 0 && spec.def != nil {
			if err := t.to(eventDefault, StateAccepted, "empty input"); err != nil {
				return zero, err
			}
			return *spec.def, nil
		}

		if err := t.to(eventLine, StateParsing, ""); err != nil {
			return zero, err
		}
		val, err := spec.parser.Parse(line)
		if err != nil {
			if spec.fallback != nil {
				if err := t.to(eventFallback, StateFallbackUsed, err.Error()); err != nil {
					return zero, err
				}
				return *spec.fallback, nil
			}
			if err := rejected(err); err != nil {
				return zero, err
			}
			continue
		}

		if err := t.to(eventParsed, StateValidating, ""); err != nil {
			return zero, err
		}
		if spec.validator != nil {
			if verr := spec.validator.Check(val); verr != nil {
				if err := rejected(verr); err != nil {
					return zero, err
				}
				continue
			}
		}
		if err := t.to(eventAccept, StateAccepted, ""); err != nil {
			return zero, err
		}
		return val, nil
	}
}

package prompt

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/statekit"
)

// State is a step in resolving a single prompt.
type State string

const (
	StateAwaitInput   State = "await_input"
	StateParsing      State = "parsing"
	StateValidating   State = "validating"
	StateRetrying     State = "retrying"
	StateAccepted     State = "accepted"      // StateAccepted is terminal, and yields a parsed or default value.
	StateFallbackUsed State = "fallback_used" // StateFallbackUsed is terminal, and yields the fallback value after a failed parse.
	StateFailed       State = "failed"        // StateFailed is terminal, and yields an error.
)

// Terminal reports whether no further transitions are possible from this [State].
func (s State) Terminal() bool {
	switch s {
	case StateAccepted, StateFallbackUsed, StateFailed:
		return true
	default:
		return false
	}
}

const (
	eventLine     statekit.EventType = "LINE"
	eventDefault  statekit.EventType = "DEFAULT"
	eventParsed   statekit.EventType = "PARSED"
	eventFallback statekit.EventType = "FALLBACK"
	eventAccept   statekit.EventType = "ACCEPT"
	eventRetry    statekit.EventType = "RETRY"
	eventAwait    statekit.EventType = "AWAIT"
	eventFail     statekit.EventType = "FAIL"
)

// transition is the payload sent with every event.
type transition struct {
	to     State
	reason string
}

// resolution is the machine context for one prompt.
type resolution struct {
	text     string
	attempts int
	path     []State
	log      *slog.Logger
}

// logTransition runs on every transition, before the new state is appended to the path.
func logTransition(ctx **resolution, event statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).log == nil {
		return
	}
	res := *ctx
	payload, ok := event.Payload.(transition)
	if !ok || len(res.path) == 0 {
		return
	}
	from := res.path[len(res.path)-1]
	res.log.Debug("Prompt transition",
		"prompt", res.text,
		"event", string(event.Type),
		"from", string(from),
		"to", string(payload.to),
		"attempt", res.attempts,
		"reason", payload.reason,
	)
}

func id(s State) statekit.StateID {
	return statekit.StateID(s)
}

func buildMachine() (*statekit.MachineConfig[*resolution], error) {
	return statekit.NewMachine[*resolution]("prompt").
		WithInitial(id(StateAwaitInput)).
		WithContext(&resolution{}).
		WithAction("log", logTransition).
		State(id(StateAwaitInput)).
			On(eventLine).Target(id(StateParsing)).Do("log").
			On(eventDefault).Target(id(StateAccepted)).Do("log").
			On(eventFail).Target(id(StateFailed)).Do("log").
			Done().
		State(id(StateParsing)).
			On(eventParsed).Target(id(StateValidating)).Do("log").
			On(eventFallback).Target(id(StateFallbackUsed)).Do("log").
			On(eventRetry).Target(id(StateRetrying)).Do("log").
			On(eventFail).Target(id(StateFailed)).Do("log").
			Done().
		State(id(StateValidating)).
			On(eventAccept).Target(id(StateAccepted)).Do("log").
			On(eventRetry).Target(id(StateRetrying)).Do("log").
			On(eventFail).Target(id(StateFailed)).Do("log").
			Done().
		State(id(StateRetrying)).
			On(eventAwait).Target(id(StateAwaitInput)).Do("log").
			On(eventFail).Target(id(StateFailed)).Do("log").
			Done().
		State(id(StateAccepted)).
			Final().
			Done().
		State(id(StateFallbackUsed)).
			Final().
			Done().
		State(id(StateFailed)).
			Final().
			Done().
		Build()
}

var (
	machineOnce sync.Once
	machine     *statekit.MachineConfig[*resolution]
	machineErr  error
)

func promptMachine() (*statekit.MachineConfig[*resolution], error) {
	machineOnce.Do(func() {
		machine, machineErr = buildMachine()
	})
	return machine, machineErr
}

// tracker drives a statekit interpreter through the states of one prompt.
type tracker struct {
	interp *statekit.Interpreter[*resolution]
	res    *resolution
}

func newTracker(text string, log *slog.Logger) (*tracker, error) {
	config, err := promptMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt state machine: %w", err)
	}
	res := &resolution{
		text: text,
		path: []State{StateAwaitInput},
		log:  log,
	}
	interp := statekit.NewInterpreter(config)
	interp.UpdateContext(func(c **resolution) {
		*c = res
	})
	interp.Start()
	return &tracker{interp: interp, res: res}, nil
}

// to sends event, and verifies that the machine arrived at the expected state.
func (t *tracker) to(event statekit.EventType, to State, reason string) error {
	from := t.current()
	t.interp.Send(statekit.Event{
		Type:    event,
		Payload: transition{to: to, reason: reason},
	})
	if got := t.current(); got != to {
		return fmt.Errorf("%w: %s from %s to %s, machine is in %s", ErrIllegalTransition, event, from, to, got)
	}
	t.res.path = append(t.res.path, to)
	return nil
}

func (t *tracker) current() State {
	return State(t.interp.State().Value)
}

func (t *tracker) stop() {
	t.interp.Stop()
}

/*
Package prompt asks a user for typed, validated values, one line at a time.

A [Spec] describes a single question: the text to show, the [parse.Parser] that converts the answer, and optionally a default, a fallback, and a [validate.Validator].
A [Resolver] reads lines from an [input.LineSource] and resolves a [Spec] to a value.

	r := prompt.NewResolver(input.Stdin())
	port, err := prompt.Resolve(r, prompt.New("Port", parse.Uint[uint16](),
		prompt.WithValidator(validate.InRange[uint16](1024, 65535)),
	))

# Resolution

Each prompt moves through these states:

	await_input -> parsing -> validating -> accepted
	                  |            |
	                  |            +-> retrying -> await_input
	                  +-> retrying
	                  +-> fallback_used

Any non-terminal state may also move to failed.

  - An empty line with a default is accepted immediately, without parsing or validating.
  - A parse failure with a fallback uses the fallback, and never retries.
  - Otherwise, parse failures and rejections are reported with the [Printer] and the prompt is shown again.
  - End of input always fails, even if a fallback or default is set.

[Resolve] retries until a value is accepted, and [TryResolve] returns the first failure instead.
Setting [Config.MaxAttempts] bounds the retries, failing with [ErrMaxAttempts].
[Resolver.LastOutcome] describes the path that the most recent prompt took, which is handy for logging and tests.

# Forms

A [Form] is an ordered set of named fields that are collected into [Answers], which keeps declaration order and encodes to JSON or YAML.

	answers, err := prompt.NewForm().
		Text("name", "Project name").
		Choice("license", "License", []string{"MIT", "Apache-2.0"}).
		OptionalText("description", "Description").
		Collect(r)

A failing required field stops collection and nothing is returned, while a failing [Optional] field is just left out.

# Configuration

Use [ConfigFromEnv] to read a [Config] from ASK_MAX_ATTEMPTS, ASK_NON_INTERACTIVE, and ASK_ERROR_PREFIX.

A [Resolver] reads from one source and is not safe for concurrent use.
*/
package prompt

/*
Package ask is the root of a small set of packages for asking a user for typed values in a CLI, one line at a time.

  - [github.com/saylorsolutions/ask/input] reads lines from a terminal, or from a script in tests.
  - [github.com/saylorsolutions/ask/parse] converts a line to a typed value.
  - [github.com/saylorsolutions/ask/validate] checks parsed values, and composes checks with And/Or.
  - [github.com/saylorsolutions/ask/prompt] ties these together, retrying bad answers, and collecting named answers into forms.

The askform command in cmd/askform runs a form defined in YAML.
*/
package ask

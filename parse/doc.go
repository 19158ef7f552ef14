/*
Package parse converts a line of user input to a typed value.

Every conversion is a [Parser], which either produces a value or an error matching [ErrParse], never both.
Parsers compose: [Slice], [Tuple], [PairOf], [TripleOf], and [Optional] wrap element parsers, so a list of optional integers is just

	parse.Slice(parse.Optional(parse.Int[int]()))

# Lists and tuples

List-like input is split with [Split], which picks the first delimiter present in the input, in this order of preference:

  - comma
  - a run of whitespace
  - semicolon
  - pipe

So "1,2,3", "1 2 3", "1;2;3", and "1|2|3" all parse to the same slice.
Note that because whitespace is preferred over semicolons and pipes, "1; 2" splits on the space.

# Custom kinds

A [Registry] maps a [Kind] name to a [Parser], which is useful when the type to ask for is only known at runtime, like when a form is loaded from a file.
Use [Register] to add a kind, and [Lookup] to get the typed [Parser] back out.
*/
package parse

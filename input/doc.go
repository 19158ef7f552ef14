/*
Package input abstracts reading a single line of text from an interactive input channel.

The [LineSource] is passed explicitly to anything that needs to read from the user, rather than reading from [os.Stdin] directly.
This makes it easy to drive prompts from a [Script] in tests, and observe a clean [ErrEndOfInput] instead of a hang.

Closing the input channel is the only way to cancel a blocked read.
*/
package input

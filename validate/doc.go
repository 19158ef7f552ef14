/*
Package validate provides composable checks over parsed values.

A [Validator] either accepts a value or rejects it with a message meant for the user.
Built-in validators carry their own default message, and [WithMessage] can replace it with something more specific:

	username := validate.WithMessage(
		validate.And(validate.MinLength(3), validate.MaxLength(20)),
		"Username must be 3-20 characters",
	)

[And] stops at the first rejection, and [Or] stops at the first acceptance.
When every validator in an [Or] rejects, the message from the last one is used.
*/
package validate

/*
Package errors provides the semantic error types of a render pass.

Every failure surfaced to the user is one of three kinds, checked with the
standard errors.Is() or the provided helpers:

	ErrConfiguration — required environment values missing or malformed
	ErrConnection    — backend unreachable or credential rejected
	ErrQuery         — backend reached, table read failed

All three are terminal for the current render pass: the caller converts
them to a status message instead of retrying.
*/
package errors

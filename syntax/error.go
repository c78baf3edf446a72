package syntax

import (
	"errors"
	"fmt"
)

// Error kinds, matchable with errors.Is.
var (
	// ErrUnexpectedToken indicates a token appeared where the grammar does not allow it
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrBadEscape indicates a malformed or unterminated escape sequence
	ErrBadEscape = errors.New("bad escape sequence")
)

// UnexpectedTokenError reports a token the parser could not accept.
type UnexpectedTokenError struct {
	Token    Token
	Expected string
}

// Error implements the error interface
func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token %s, expected %s", e.Token, e.Expected)
}

// Unwrap returns ErrUnexpectedToken
func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

// BadEscapeError reports an escape the tokenizer could not interpret.
// Pos is the code-point index of the backslash.
type BadEscapeError struct {
	Pos      int
	Expected string
}

// Error implements the error interface
func (e *BadEscapeError) Error() string {
	return fmt.Sprintf("Bad escape sequence at position %d, expected %s", e.Pos, e.Expected)
}

// Unwrap returns ErrBadEscape
func (e *BadEscapeError) Unwrap() error {
	return ErrBadEscape
}

func unexpected(tok Token, expected string) error {
	return &UnexpectedTokenError{Token: tok, Expected: expected}
}

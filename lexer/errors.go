// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

type (
	// ParseError is returned for an invalid order expression.
	ParseError struct {
		// Offset is the 0-based position, in characters (runes) not bytes, of the offending
		// token.
		Offset int
		// Expected holds the token kind that was expected, TokenNone if unspecified.
		Expected TokenID
		// Msg is an optional human readable expectation.
		Msg string
	}
)

const parseErrFmt = "invalid token encountered at position: %d."

// Contract errors.
var (
	// ErrInvalidArgument is returned when an operation is called with an argument it cannot
	// handle; the call has to be fixed rather than retried.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrEmptyExpression = fmt.Errorf(`%w: "expression" must be a non-empty string`, ErrInvalidArgument)
)

// Lexing errors.
var (
	ErrUnknownDirection = errors.New("unknown direction")
)

// Error is the error interface implementation for ParseError.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf(parseErrFmt, e.Offset)
	if e.Msg != "" {
		msg += "  " + e.Msg
	}

	return msg
}

func newParseError(offset int, expected TokenID, msg string) *ParseError {
	return &ParseError{Offset: offset, Expected: expected, Msg: msg}
}

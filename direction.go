// SPDX-License-Identifier: MIT
package ordery

import (
	"fmt"

	"gitlab.com/fisherprime/ordery/lexer"
)

type (
	// Direction is a sort direction, embedded verbatim in serialization output.
	Direction string
)

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection converts a case insensitive direction keyword into a Direction.
func ParseDirection(s string) (d Direction, err error) {
	switch d = Direction(lexer.FoldCase(s)); d {
	case Asc, Desc:
	default:
		d, err = "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}

	return
}

// Valid checks whether d is one of the known directions.
func (d Direction) Valid() bool { return d == Asc || d == Desc }

// String is the fmt.Stringer implementation for Direction.
func (d Direction) String() string { return string(d) }

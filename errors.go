// SPDX-License-Identifier: MIT
package ordery

import (
	"fmt"

	"gitlab.com/fisherprime/ordery/lexer"
)

type (
	// ParseError is the error for a syntactically invalid order expression.
	ParseError = lexer.ParseError
)

// Contract errors, all wrapping ErrInvalidArgument.
var (
	ErrInvalidArgument = lexer.ErrInvalidArgument

	ErrEmptyExpression  = lexer.ErrEmptyExpression
	ErrInvalidTarget    = fmt.Errorf(`%w: "target" must be a string or *Target`, ErrInvalidArgument)
	ErrEmptyTarget      = fmt.Errorf(`%w: "target" must be a non-empty string`, ErrInvalidArgument)
	ErrInvalidSegment   = fmt.Errorf("%w: path segment", ErrInvalidArgument)
	ErrEmptyPath        = fmt.Errorf("%w: target path is empty", ErrInvalidArgument)
	ErrInvalidDirection = fmt.Errorf("%w: direction must be asc or desc", ErrInvalidArgument)
	ErrNilOrder         = fmt.Errorf("%w: nil order", ErrInvalidArgument)
)

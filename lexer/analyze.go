// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	dirAsc  = "asc"
	dirDesc = "desc"
)

// A cases.Caser is stateful & can't be shared between goroutines, pooling avoids one per token.
var casers = sync.Pool{
	New: func() interface{} {
		c := cases.Lower(language.Und)
		return &c
	},
}

// FoldCase lowercases s the way direction keywords are matched.
func FoldCase(s string) string {
	c := casers.Get().(*cases.Caser)
	defer casers.Put(c)

	return c.String(s)
}

// Analyze classifies a scanned run of characters.
//
// context is the terminator of the previously lexed Item, terminator the structural token that
// ended run (TokenNone at the end of the source) & selfTerminating reports whether run is a lone
// structural character. pos is the byte offset of run in the source.
//
// A self terminating run is always the structural token itself. Otherwise the context decides:
// TokenFieldIndicator yields a TokenField, TokenDirIndicator a TokenDirection & anything else a
// TokenUnknown.
//
// A TokenDirection run other than "asc" or "desc" fails with ErrUnknownDirection.
func Analyze(context TokenID, run string, terminator TokenID, selfTerminating bool, pos int) (item Item, err error) {
	item = Item{
		ID:         TokenUnknown,
		Terminator: terminator,
		Val:        run,
		Pos:        pos,
	}

	switch {
	case selfTerminating:
		item.ID = terminator
	case context == TokenDirIndicator:
		item.ID = TokenDirection
		item.Val = FoldCase(run)

		if item.Val != dirAsc && item.Val != dirDesc {
			err = fmt.Errorf("%w: %q", ErrUnknownDirection, run)
		}
	case context == TokenFieldIndicator:
		item.ID = TokenField
		item.Index, item.IsIndex = parseIndex(run)
	}

	return
}

// parseIndex converts a run made up of decimal digits only into an int.
//
// Runs with any other character, or too large for an int, remain field names.
func parseIndex(run string) (index int, ok bool) {
	if run == "" {
		return
	}

	for i := 0; i < len(run); i++ {
		if run[i] < '0' || run[i] > '9' {
			return
		}
	}

	var err error
	if index, err = strconv.Atoi(run); err != nil {
		index = 0
		return
	}
	ok = true

	return
}

// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Item holds a lexed token & the context it leaves for the next one.
	Item struct {
		Val        string  // The value of this Item, lowercased for TokenDirection.
		Pos        int     // The starting position, (in bytes) of this Item.
		Index      int     // The integer value of a purely numeric TokenField.
		ID         TokenID // The type of this Item.
		Terminator TokenID // The structural token that ended this Item.
		IsIndex    bool    // Whether Index holds the field's value.
	}
)

// Value obtains the Item's value, an int for numeric fields & a string otherwise.
func (i Item) Value() interface{} {
	if i.IsIndex {
		return i.Index
	}

	return i.Val
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	return fmt.Sprintf("%s(%q)@%d->%s", i.ID, i.Val, i.Pos, i.Terminator)
}

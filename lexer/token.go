// SPDX-License-Identifier: MIT
package lexer

type (
	// TokenID identifies the kind of a lexed Item.
	TokenID int
)

// Token kinds, the zero value is TokenNone.
const (
	TokenNone           TokenID = iota // Empty token.
	TokenFieldIndicator                // '/'.
	TokenField                         // A JSON pointer field name or index.
	TokenDirIndicator                  // ':'.
	TokenDirection                     // "asc" or "desc".
	TokenConcat                        // ','.
	TokenUnknown                       // Anything out of context.
)

var tokenNames = [...]string{
	TokenNone:           "NONE",
	TokenFieldIndicator: "FIELD_INDICATOR",
	TokenField:          "FIELD",
	TokenDirIndicator:   "DIR_INDICATOR",
	TokenDirection:      "DIRECTION",
	TokenConcat:         "CONCAT",
	TokenUnknown:        "UNKNOWN",
}

var expectMessages = [...]string{
	TokenNone:           "",
	TokenFieldIndicator: `Expected a "/" token.`,
	TokenField:          "Expected a JSON pointer field token.",
	TokenDirIndicator:   `Expected a ":" token.`,
	TokenDirection:      `Expected an "asc" or "desc" token.`,
	TokenConcat:         `Expected a "," token.`,
	TokenUnknown:        "Unknown token encountered.",
}

// String is the fmt.Stringer implementation for TokenID.
func (t TokenID) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "TokenID(?)"
	}

	return tokenNames[t]
}

// expectMessage obtains the message used when a token of kind t was expected.
func (t TokenID) expectMessage() string {
	if t < 0 || int(t) >= len(expectMessages) {
		return ""
	}

	return expectMessages[t]
}

// structural maps the structural characters to their token kinds.
//
// Improves on performance compared to a switch.
var structural = [256]TokenID{
	'/': TokenFieldIndicator,
	':': TokenDirIndicator,
	',': TokenConcat,
}

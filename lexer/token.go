// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// TokenID int holding an identifier for Token kinds.
	TokenID int

	// Token is one classified lexical unit of an AGD source.
	//
	// The payload fields are only meaningful for the TokenIDs documented on
	// them; they are zero otherwise, keeping Token comparable.
	Token struct {
		ID TokenID

		// Count is the run length of a TokenLineFeed or TokenSpace, >= 1.
		Count int

		// Index references a side table entry for a TokenIdentifier or
		// TokenStringLiteral.
		Index int

		// Char, Line & Position describe a TokenUnexpected; Line & Position
		// are 1-based.
		Char     rune
		Line     int
		Position int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                  = iota // Consume 0 to start actual numbering at 1.
	TokenAbbreviate           // The `Abbreviate` keyword.
	TokenAnd                  // The `and` keyword.
	TokenBy                   // The `by` keyword.
	TokenComment              // A fully matched `(...)` span.
	TokenConnect              // The `Connect` keyword.
	TokenDeclare              // The `Declare` keyword.
	TokenFullStop             // The `.` terminator.
	TokenIdentifier           // An identifier side table reference.
	TokenLineFeed             // A run of line feeds.
	TokenSpace                // A run of spaces.
	TokenStringLiteral        // A string literal side table reference.
	TokenUnexpected           // A rejected character.
)

// String is the `fmt.Stringer` interface implementation for `Token`.
func (t Token) String() string {
	switch t.ID {
	case TokenAbbreviate:
		return "Abbreviate"
	case TokenAnd:
		return "and"
	case TokenBy:
		return "by"
	case TokenComment:
		return "Comment"
	case TokenConnect:
		return "Connect"
	case TokenDeclare:
		return "Declare"
	case TokenFullStop:
		return "FullStop"
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%d)", t.Index)
	case TokenLineFeed:
		return fmt.Sprintf("LineFeed(%d)", t.Count)
	case TokenSpace:
		return fmt.Sprintf("Space(%d)", t.Count)
	case TokenStringLiteral:
		return fmt.Sprintf("StringLiteral(%d)", t.Index)
	case TokenUnexpected:
		return fmt.Sprintf("Unexpected(%q, line %d, position %d)", t.Char, t.Line, t.Position)
	default:
		return fmt.Sprintf("Token(%d)", int(t.ID))
	}
}

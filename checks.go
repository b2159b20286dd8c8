// SPDX-License-Identifier: MIT
package agd

import (
	"fmt"

	"gitlab.com/fisherprime/agd/lexer"
)

// Pane tags for the check messages.
const (
	lineTag    = "  Line "
	typoTag    = "  Typo "
	syntaxTag  = "Syntax "
	failureTag = "Failed "
)

// CheckLineWidth reports every line of input exceeding limit characters,
// citing the excess.
//
// This check operates on the raw text, not the token sequence; a final line
// lacking its line feed is never measured.
func CheckLineWidth(input string, limit int) (violations []Violation) {
	column := 0
	line := 1

	for _, character := range input {
		if character != '\n' {
			column++
			continue
		}

		if column > limit {
			violations = append(violations, Violation{
				Severity: SeverityMinor,
				Tag:      lineTag,
				Message:  fmt.Sprintf("%d is %d characters too long.", line, column-limit),
			})
		}

		column = 0
		line++
	}

	return
}

// CheckTypos reports every TokenUnexpected in the finalized token sequence.
func CheckTypos(tokens []lexer.Token) (violations []Violation) {
	for _, token := range tokens {
		if token.ID != lexer.TokenUnexpected {
			continue
		}

		violations = append(violations, Violation{
			Severity: SeverityInfo,
			Tag:      typoTag,
			Message: fmt.Sprintf("'%c' in line %d at position %d.",
				token.Char, token.Line, token.Position),
		})
	}

	return
}

// CheckSyntax reports the structural rule violations: a source starting with
// obsolete spaces & a non-empty source not ended by line feeds.
func CheckSyntax(tokens []lexer.Token) (violations []Violation) {
	if len(tokens) < 1 {
		return
	}

	if tokens[0].ID == lexer.TokenSpace {
		violations = append(violations, Violation{
			Severity: SeverityMajor,
			Tag:      syntaxTag,
			Message:  "rule violation:  the source file starts with obsolete spaces.",
		})
	}

	if tokens[len(tokens)-1].ID != lexer.TokenLineFeed {
		violations = append(violations, Violation{
			Severity: SeverityMajor,
			Tag:      syntaxTag,
			Message:  "rule violation:  each source file must be ended by line feeds.",
		})
	}

	return
}

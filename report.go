// SPDX-License-Identifier: MIT
package agd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type (
	// Severity int grading a Violation.
	Severity int

	// Violation is one soft issue found in an AGD source.
	//
	// Violations are values, not errors; they are collected & counted while
	// processing continues.
	Violation struct {
		Severity Severity
		Tag      string
		Message  string
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_             = iota // Consume 0 to start actual numbering at 1.
	SeverityInfo         // Easy to fix, e.g. a typo.
	SeverityMinor        // Deserves a refactoring, e.g. an overlong line.
	SeverityMajor        // A syntax rule violation or the failure summary.
)

// String is the `fmt.Stringer` interface implementation for `Severity`.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "informational"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// colour obtains the pane colour for a Severity.
func (s Severity) colour() *color.Color {
	switch s {
	case SeverityInfo:
		return color.New(color.FgGreen)
	case SeverityMinor:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// String is the `fmt.Stringer` interface implementation for `Violation`.
func (v Violation) String() string { return v.Tag + v.Message }

// Fprint writes the Violation to w, colouring its tag by severity.
func (v Violation) Fprint(w io.Writer) (err error) {
	if _, err = v.Severity.colour().Fprint(w, v.Tag); err != nil {
		return
	}
	_, err = fmt.Fprintln(w, v.Message)

	return
}

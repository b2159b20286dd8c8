// SPDX-License-Identifier: MIT
package agd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantErr   error
	}{
		{name: "empty", input: ""},
		{name: "clean", input: "(c)\nDeclare \"x\".\n"},
		{
			name:      "leading spaces",
			input:     " abc\n",
			wantCount: 2, // The violation & the failure summary.
			wantErr:   ErrIssuesPresent,
		},
		{
			name:      "overlong line",
			input:     strings.Repeat("a", 85) + "\n",
			wantCount: 2,
			wantErr:   ErrIssuesPresent,
		},
		{
			name:      "typo",
			input:     ".;\n",
			wantCount: 2,
			wantErr:   ErrIssuesPresent,
		},
		{
			name:    "unterminated comment",
			input:   "(",
			wantErr: ErrSourceNotReady,
		},
		{
			name:    "unterminated string",
			input:   `"`,
			wantErr: ErrSourceNotReady,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotViolations, err := Evaluate(context.Background(), nil, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErr)
			}
			if len(gotViolations) != tt.wantCount {
				t.Errorf("Evaluate() violations = %v, want %d", gotViolations, tt.wantCount)
			}
		})
	}
}

func TestEvaluate_summary(t *testing.T) {
	// Leading spaces & a missing trailing line feed.
	violations, err := Evaluate(context.Background(), nil, " abc.")
	if !errors.Is(err, ErrIssuesPresent) {
		t.Fatalf("Evaluate() error = %v, want %v", err, ErrIssuesPresent)
	}

	last := violations[len(violations)-1]
	if last.Tag != failureTag {
		t.Errorf("summary tag = %q, want %q", last.Tag, failureTag)
	}
	if want := "due to 2 issues to fix."; last.Message != want {
		t.Errorf("summary message = %q, want %q", last.Message, want)
	}
	if last.Severity != SeverityMajor {
		t.Errorf("summary severity = %v, want %v", last.Severity, SeverityMajor)
	}
}

func TestEvaluate_singularSummary(t *testing.T) {
	violations, err := Evaluate(context.Background(), nil, " abc\n")
	if !errors.Is(err, ErrIssuesPresent) {
		t.Fatalf("Evaluate() error = %v, want %v", err, ErrIssuesPresent)
	}

	last := violations[len(violations)-1]
	if want := "due to 1 issue to fix."; last.Message != want {
		t.Errorf("summary message = %q, want %q", last.Message, want)
	}
}

func TestEvaluate_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Evaluate(ctx, nil, "abc\n"); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate() error = %v, want %v", err, context.Canceled)
	}
}

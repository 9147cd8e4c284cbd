package formatter

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/clin/internal"
	tt "github.com/gnolang/clin/internal/types"
)

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"let x = 1",
			"if (x > 0) {",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:       "control-statement",
			Filename:   "test.swift",
			Severity:   tt.SeverityWarning,
			Start:      token.Position{Line: 2, Column: 1, Offset: 10},
			End:        token.Position{Line: 2, Column: 13, Offset: 22},
			Message:    "condition should not be wrapped in parentheses",
			Suggestion: "if x > 0 {",
		},
	}

	expected := `warning: control-statement
 --> test.swift:2:1
  |
2 | if (x > 0) {
  | ~~~~~~~~~~~~~
  = condition should not be wrapped in parentheses
Suggestion:
  |
2 | if x > 0 {
  |

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestGenerateFormattedIssueWithoutSuggestion(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{"while (x) {"},
	}

	issues := []tt.Issue{
		{
			Rule:     "control-statement",
			Filename: "test.swift",
			Severity: tt.SeverityError,
			Start:    token.Position{Line: 1, Column: 1},
			End:      token.Position{Line: 1, Column: 11},
			Message:  "condition should not be wrapped in parentheses",
		},
	}

	expected := `error: control-statement
 --> test.swift:1:1
  |
1 | while (x) {
  | ~~~~~~~~~~~
  = condition should not be wrapped in parentheses

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestFindCommonIndent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"no indent", []string{"a", "b"}, ""},
		{"shared spaces", []string{"    a", "    b"}, "    "},
		{"shared tabs", []string{"\t\ta", "\tb"}, "\t"},
		{"empty lines skipped", []string{"", "  a", "  b"}, "  "},
		{"no lines", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, findCommonIndent(tc.lines))
		})
	}
}

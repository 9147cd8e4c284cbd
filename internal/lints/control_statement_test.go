package lints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/clin/internal/classify"
	tt "github.com/gnolang/clin/internal/types"
)

func TestDetectWrappedConditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int // number of issues
	}{
		{
			name:     "bare condition",
			src:      "if condition {",
			expected: 0,
		},
		{
			name:     "wrapped condition",
			src:      "if (condition) {",
			expected: 1,
		},
		{
			name:     "wrapped compound condition",
			src:      "if ((a || b) && (c || d)) {",
			expected: 1,
		},
		{
			name:     "tuple comparison",
			src:      "if (a, b) == (0, 1) {",
			expected: 0,
		},
		{
			name:     "parenthesized sub-expressions",
			src:      "if (a || b) && (c || d) {",
			expected: 0,
		},
		{
			name:     "chained call on parenthesized range",
			src:      "if (min...max).contains(value) {",
			expected: 0,
		},
		{
			name:     "bare while",
			src:      "while condition {",
			expected: 0,
		},
		{
			name:     "wrapped while",
			src:      "while (condition) {",
			expected: 1,
		},
		{
			name:     "bare switch",
			src:      "switch foo {",
			expected: 0,
		},
		{
			name:     "wrapped switch",
			src:      "switch (foo) {",
			expected: 1,
		},
		{
			name:     "wrapped for-in",
			src:      "for (item in collection) {",
			expected: 1,
		},
		{
			name:     "wrapped guard",
			src:      "guard (condition) else {",
			expected: 1,
		},
		{
			name:     "guard without else does not match",
			src:      "guard (condition) {",
			expected: 0,
		},
		{
			name:     "keyword inside string",
			src:      `let s = "if (condition) {"`,
			expected: 0,
		},
		{
			name:     "keyword inside comment",
			src:      "// if (condition) {",
			expected: 0,
		},
		{
			name:     "keyword as identifier tail",
			src:      "renderGif (string) {",
			expected: 0,
		},
		{
			name:     "no space before parenthesis",
			src:      "if(condition) {",
			expected: 1,
		},
		{
			name:     "no space before brace",
			src:      "if (condition){",
			expected: 1,
		},
		{
			name: "mixed file",
			src: strings.Join([]string{
				"func run() {",
				"    if (x > 0) {",
				"    }",
				"    while y < 10 {",
				"    }",
				"    switch (y) {",
				"    }",
				"}",
			}, "\n"),
			expected: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			issues, err := DetectWrappedConditions("test.swift", []byte(tc.src), tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)

			for _, issue := range issues {
				assert.Equal(t, RuleControlStatement, issue.Rule)
				assert.Equal(t, tt.SeverityWarning, issue.Severity)
				assert.Equal(t, "test.swift", issue.Filename)
			}
		})
	}
}

func TestDetectWrappedConditionsPositions(t *testing.T) {
	t.Parallel()
	src := "let a = 1\nif (a > 0) {\n}\n"

	issues, err := DetectWrappedConditions("test.swift", []byte(src), tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, 2, issue.Start.Line)
	assert.Equal(t, 1, issue.Start.Column)
	assert.Equal(t, strings.Index(src, "if"), issue.Start.Offset)
	assert.Equal(t, "if a > 0 {", issue.Suggestion)
}

func TestIsFalsePositive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		text     string
		leading  classify.Kind
		expected bool
	}{
		{
			name:     "single outer group",
			text:     "if (condition) {",
			leading:  classify.Keyword,
			expected: false,
		},
		{
			name:     "nested groups close at the end",
			text:     "if ((a || b) && (c || d)) {",
			leading:  classify.Keyword,
			expected: false,
		},
		{
			name:     "outer group closes mid-expression",
			text:     "if (a || b) && (c || d) {",
			leading:  classify.Keyword,
			expected: true,
		},
		{
			name:     "method chained on closed group",
			text:     "if (min...max).contains(value) {",
			leading:  classify.Keyword,
			expected: true,
		},
		{
			name:     "not a keyword",
			text:     "if (condition) {",
			leading:  classify.Other,
			expected: true,
		},
		{
			name:     "empty condition",
			text:     "if () {",
			leading:  classify.Keyword,
			expected: false,
		},
		{
			name:     "no parentheses at all",
			text:     "if x {",
			leading:  classify.Keyword,
			expected: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := IsFalsePositive(tc.text, tc.leading)
			assert.Equal(t, tc.expected, got)
			// pure function: a second call must agree with the first
			assert.Equal(t, got, IsFalsePositive(tc.text, tc.leading))
		})
	}
}

func TestScanStatementCapturesCondition(t *testing.T) {
	t.Parallel()
	src := []byte("if ( a > 0 ) {\n}")
	classifier := classify.New(src)

	matches := ScanStatement(src, StatementIf, classifier)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Offset)
	assert.Equal(t, " a > 0 ", matches[0].Condition)
	assert.Equal(t, classify.Keyword, matches[0].Leading)
}

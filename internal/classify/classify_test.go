package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileClassifier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		offsetOf string // first occurrence locates the probed offset
		expected Kind
	}{
		{
			name:     "plain if keyword",
			src:      "if (condition) {",
			offsetOf: "if",
			expected: Keyword,
		},
		{
			name:     "guard keyword after newline",
			src:      "let x = 1\nguard (x > 0) else {",
			offsetOf: "guard",
			expected: Keyword,
		},
		{
			name:     "keyword inside line comment",
			src:      "// if (condition) {\nlet x = 1",
			offsetOf: "if",
			expected: Other,
		},
		{
			name:     "keyword inside block comment",
			src:      "/* while (x) { */ let y = 2",
			offsetOf: "while",
			expected: Other,
		},
		{
			name:     "keyword inside nested block comment",
			src:      "/* outer /* if (x) { */ still comment */ let z = 3",
			offsetOf: "if",
			expected: Other,
		},
		{
			name:     "keyword inside string literal",
			src:      `let s = "if (condition) {"`,
			offsetOf: "if",
			expected: Other,
		},
		{
			name:     "escaped quote does not end the string",
			src:      `let s = "\" if (x) {"`,
			offsetOf: "if",
			expected: Other,
		},
		{
			name:     "keyword as identifier tail",
			src:      "renderGif (string) {",
			offsetOf: "Gif",
			expected: Other,
		},
		{
			name:     "identifier is not a keyword",
			src:      "ifconfig (x) {",
			offsetOf: "ifconfig",
			expected: Other,
		},
		{
			name:     "code after comment classifies again",
			src:      "// note\nif (x) {",
			offsetOf: "if",
			expected: Keyword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset := strings.Index(tt.src, tt.offsetOf)
			assert.GreaterOrEqual(t, offset, 0, "probe substring must exist")

			c := New([]byte(tt.src))
			assert.Equal(t, tt.expected, c.At(offset))
		})
	}
}

func TestFileClassifierUnterminatedLiterals(t *testing.T) {
	t.Parallel()

	c := New([]byte(`let s = "never closed if (x) {`))
	assert.Equal(t, Other, c.At(strings.Index(`let s = "never closed if (x) {`, "if")))

	c = New([]byte("/* never closed while (x) {"))
	assert.Equal(t, Other, c.At(strings.Index("/* never closed while (x) {", "while")))
}

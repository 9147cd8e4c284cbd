// Package classify provides a minimal lexical classification of source
// text: for any byte offset it answers whether a language keyword token
// starts there. It deliberately stops short of full tokenization; the
// lint rules only need to tell a real keyword apart from the same word
// inside a string, a comment or a longer identifier.
package classify

// Kind tags the token found at a source offset.
type Kind int

const (
	Other Kind = iota
	Keyword
)

// Classifier answers the lexical role of the token starting at an offset.
type Classifier interface {
	At(offset int) Kind
}

var keywords = map[string]struct{}{
	"if":       {},
	"for":      {},
	"guard":    {},
	"switch":   {},
	"while":    {},
	"else":     {},
	"repeat":   {},
	"do":       {},
	"case":     {},
	"default":  {},
	"return":   {},
	"break":    {},
	"continue": {},
	"in":       {},
	"where":    {},
	"func":     {},
	"var":      {},
	"let":      {},
}

// FileClassifier precomputes the keyword token starts of one source text.
type FileClassifier struct {
	keywordStart map[int]struct{}
}

// New scans src once and records every offset where a keyword token
// begins. Line comments, block comments (which nest) and string literals
// are skipped, so a keyword spelled inside them classifies as Other.
func New(src []byte) *FileClassifier {
	c := &FileClassifier{keywordStart: make(map[int]struct{})}

	i := 0
	n := len(src)
	for i < n {
		ch := src[i]
		switch {
		case ch == '/' && i+1 < n && src[i+1] == '/':
			i = skipLineComment(src, i)
		case ch == '/' && i+1 < n && src[i+1] == '*':
			i = skipBlockComment(src, i)
		case ch == '"':
			i = skipString(src, i)
		case isWordByte(ch):
			start := i
			for i < n && isWordByte(src[i]) {
				i++
			}
			word := string(src[start:i])
			if _, ok := keywords[word]; ok {
				c.keywordStart[start] = struct{}{}
			}
		default:
			i++
		}
	}
	return c
}

// At reports the classification of the token starting at offset.
func (c *FileClassifier) At(offset int) Kind {
	if _, ok := c.keywordStart[offset]; ok {
		return Keyword
	}
	return Other
}

func skipLineComment(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment consumes a /* ... */ comment, honoring nesting.
func skipBlockComment(src []byte, i int) int {
	depth := 0
	n := len(src)
	for i < n {
		if src[i] == '/' && i+1 < n && src[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if src[i] == '*' && i+1 < n && src[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				return i
			}
			continue
		}
		i++
	}
	return i
}

// skipString consumes a double-quoted literal, honoring backslash escapes.
// Triple-quoted multiline literals are consumed as three adjacent strings,
// which is good enough: their contents never classify as keywords unless a
// quote closes first, and a degenerate unterminated literal just runs to
// the end of the text.
func skipString(src []byte, i int) int {
	i++ // opening quote
	n := len(src)
	for i < n {
		switch src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func isWordByte(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}

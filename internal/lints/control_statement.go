package lints

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gnolang/clin/internal/classify"
	tt "github.com/gnolang/clin/internal/types"
)

const (
	RuleControlStatement = "control-statement"

	msgWrappedCondition = "condition should not be wrapped in parentheses"
)

// StatementKind enumerates the control statements checked for redundantly
// parenthesized conditions. The set is fixed; adding a kind means adding a
// case to the pattern switch below.
type StatementKind int

const (
	StatementIf StatementKind = iota
	StatementFor
	StatementGuard
	StatementSwitch
	StatementWhile
)

// StatementKinds lists every checked kind in reporting order.
var StatementKinds = [...]StatementKind{
	StatementIf,
	StatementFor,
	StatementGuard,
	StatementSwitch,
	StatementWhile,
}

func (k StatementKind) String() string {
	switch k {
	case StatementIf:
		return "if"
	case StatementFor:
		return "for"
	case StatementGuard:
		return "guard"
	case StatementSwitch:
		return "switch"
	case StatementWhile:
		return "while"
	default:
		return "unknown"
	}
}

// pattern returns the regular expression source for one statement kind.
// The parenthesized group rejects commas and open braces, so a tuple
// comparison like `if (a, b) == (0, 1) {` never matches at the top level;
// subtler shapes are left to IsFalsePositive. A guard condition is
// followed by `else` before its brace.
func (k StatementKind) pattern() string {
	if k == StatementGuard {
		return fmt.Sprintf(`\b%s\s*\(([^,{]*)\)\s*else\s*\{`, k)
	}
	return fmt.Sprintf(`\b%s\s*\(([^,{]*)\)\s*\{`, k)
}

var statementPatterns = func() map[StatementKind]*regexp.Regexp {
	m := make(map[StatementKind]*regexp.Regexp, len(StatementKinds))
	for _, k := range StatementKinds {
		m[k] = regexp.MustCompile(k.pattern())
	}
	return m
}()

// Match is one candidate occurrence found by scanning a statement kind.
// Condition holds the captured group text, verbatim.
type Match struct {
	Offset    int
	Length    int
	Text      string
	Condition string
	Leading   classify.Kind
}

// ScanStatement runs the wrapped-condition pattern of one statement kind
// over src. Each match carries the classification of its leading token so
// IsFalsePositive can reject keywords that only occur inside strings,
// comments or longer identifiers.
func ScanStatement(src []byte, kind StatementKind, classifier classify.Classifier) []Match {
	var matches []Match
	for _, idx := range statementPatterns[kind].FindAllSubmatchIndex(src, -1) {
		matches = append(matches, Match{
			Offset:    idx[0],
			Length:    idx[1] - idx[0],
			Text:      string(src[idx[0]:idx[1]]),
			Condition: string(src[idx[2]:idx[3]]),
			Leading:   classifier.At(idx[0]),
		})
	}
	return matches
}

// IsFalsePositive reports whether a scanned occurrence does not actually
// wrap the whole condition. The leading token must be a real keyword, and
// the first-opened parenthesis group must stay open until the last closing
// parenthesis of the match. A group that closes earlier belongs to a
// sub-expression, as in `if (a || b) && (c || d) {` or
// `if (min...max).contains(value) {`.
func IsFalsePositive(text string, leading classify.Kind) bool {
	if leading != classify.Keyword {
		return true
	}

	last := strings.LastIndexByte(text, ')')
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if i < last && depth == 1 {
				return true
			}
			depth--
		}
	}
	return false
}

// DetectWrappedConditions reports every control statement in src whose
// condition is wrapped in a redundant pair of parentheses. Issues are
// emitted per statement kind, in source order within each kind, and all
// positions refer to src as given.
func DetectWrappedConditions(filename string, src []byte, severity tt.Severity) ([]tt.Issue, error) {
	classifier := classify.New(src)
	position := NewPositioner(filename, src)

	var issues []tt.Issue
	for _, kind := range StatementKinds {
		for _, m := range ScanStatement(src, kind, classifier) {
			if IsFalsePositive(m.Text, m.Leading) {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:       RuleControlStatement,
				Category:   "style",
				Filename:   filename,
				Message:    msgWrappedCondition,
				Suggestion: unwrapped(kind, m.Condition),
				Severity:   severity,
				Start:      position(m.Offset),
				End:        position(m.Offset + m.Length),
			})
		}
	}
	return issues, nil
}

// unwrapped renders the statement head without the outer parentheses, for
// display next to the issue.
func unwrapped(kind StatementKind, condition string) string {
	if kind == StatementGuard {
		return fmt.Sprintf("guard %s else {", strings.TrimSpace(condition))
	}
	return fmt.Sprintf("%s %s {", kind, strings.TrimSpace(condition))
}

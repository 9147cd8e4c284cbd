// Package nolint implements inline suppression comments. A `//nolint`
// comment disables all rules, `//nolint:rule-a,rule-b` only the named
// ones. A comment suppresses findings on its own line; when the comment
// stands alone on its line it suppresses the following line instead.
package nolint

import (
	"go/token"
	"strings"
)

const nolintPrefix = "//nolint"

// Manager holds the parsed nolint scopes of one source text.
type Manager struct {
	scopes []scope
}

// scope is a line range in which a set of rules is disabled.
type scope struct {
	rules     map[string]struct{} // empty => all rules
	startLine int
	endLine   int
}

// Parse scans src line by line for nolint comments.
func Parse(src []byte) *Manager {
	m := &Manager{}
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		idx := strings.Index(line, nolintPrefix)
		if idx == -1 {
			continue
		}
		sc := scope{
			rules:     parseRules(line[idx+len(nolintPrefix):]),
			startLine: i + 1,
			endLine:   i + 1,
		}
		if strings.TrimSpace(line[:idx]) == "" {
			// standalone comment line: applies to the next line
			sc.endLine = i + 2
		}
		m.scopes = append(m.scopes, sc)
	}
	return m
}

// parseRules extracts the rule names following the colon of a nolint
// comment. No colon, or nothing after it, disables every rule.
func parseRules(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	if !strings.HasPrefix(text, ":") {
		return rules
	}
	text = strings.TrimPrefix(text, ":")
	if stop := strings.Index(text, "//"); stop != -1 {
		text = text[:stop]
	}
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// IsNolint reports whether the given rule is suppressed at pos.
func (m *Manager) IsNolint(pos token.Position, rule string) bool {
	for _, sc := range m.scopes {
		if pos.Line < sc.startLine || pos.Line > sc.endLine {
			continue
		}
		if len(sc.rules) == 0 {
			return true
		}
		if _, ok := sc.rules[rule]; ok {
			return true
		}
	}
	return false
}

// Enabled reports whether the rule may still be applied at pos. It is the
// complement of IsNolint, shaped for callers that filter candidate ranges
// before acting on them.
func (m *Manager) Enabled(pos token.Position, rule string) bool {
	return !m.IsNolint(pos, rule)
}

package internal

import (
	"github.com/gnolang/clin/internal/lints"
	tt "github.com/gnolang/clin/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule over the raw source text and returns a
	// slice of Issues.
	Check(filename string, src []byte) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// ControlStatementRule reports control statements whose condition is
// wrapped in redundant parentheses.
type ControlStatementRule struct {
	severity tt.Severity
}

func NewControlStatementRule() LintRule {
	return &ControlStatementRule{severity: tt.SeverityWarning}
}

func (r *ControlStatementRule) Check(filename string, src []byte) ([]tt.Issue, error) {
	return lints.DetectWrappedConditions(filename, src, r.severity)
}

func (r *ControlStatementRule) Name() string {
	return lints.RuleControlStatement
}

func (r *ControlStatementRule) Severity() tt.Severity {
	return r.severity
}

func (r *ControlStatementRule) SetSeverity(severity tt.Severity) {
	r.severity = severity
}

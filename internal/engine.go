package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gnolang/clin/internal/nolint"
	tt "github.com/gnolang/clin/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	logger       *zap.Logger

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
}

// NewEngine creates a new lint engine with the configured per-rule
// severities applied on top of the defaults.
func NewEngine(logger *zap.Logger, rules map[string]tt.ConfigRule) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := &Engine{logger: logger}
	engine.applyRules(rules)
	return engine, nil
}

type ruleConstructor func() LintRule

var allRuleConstructors = map[string]ruleConstructor{
	"control-statement": NewControlStatementRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			// unknown rule name in the config, skip it
			continue
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		r.SetSeverity(rule.Severity)
	}
}

func (e *Engine) registerDefaultRules() {
	for key, construct := range allRuleConstructors {
		rule := construct()
		if rule.Severity() != tt.SeverityOff {
			e.rules[key] = rule
		}
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// Run applies all lint rules to the given file and returns a slice of
// Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.runSource(filename, src)
}

// RunSource applies all lint rules to the given source and returns a
// slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("", source)
}

func (e *Engine) runSource(filename string, src []byte) ([]tt.Issue, error) {
	nolintMgr := nolint.Parse(src)

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		issues, err := rule.Check(filename, src)
		if err != nil {
			e.logger.Warn("rule check failed",
				zap.String("rule", rule.Name()),
				zap.String("file", filename),
				zap.Error(err))
			continue
		}
		allIssues = append(allIssues, filterNolintIssues(nolintMgr, issues)...)
	}
	return allIssues, nil
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, path)
}

func (e *Engine) isIgnoredPath(path string) bool {
	for _, ignored := range e.ignoredPaths {
		if strings.HasPrefix(path, ignored) {
			return true
		}
	}
	return false
}

// filterNolintIssues drops issues suppressed by nolint comments.
func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a
// SourceCode struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}

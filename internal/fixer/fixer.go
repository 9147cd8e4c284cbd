// Package fixer rewrites redundant parentheses out of `if` conditions.
// Only the `if` kind is autocorrected; the other statement kinds are
// report-only.
package fixer

import (
	"fmt"
	"go/token"
	"os"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/gnolang/clin/internal/classify"
	"github.com/gnolang/clin/internal/lints"
	"github.com/gnolang/clin/internal/nolint"
	tt "github.com/gnolang/clin/internal/types"
)

// SourceFile is the file collaborator the fixer reads from and rewrites
// through. The fixer never writes more than once per Fix call.
type SourceFile interface {
	Contents() ([]byte, error)
	Write([]byte) error
}

// Enablement filters out ranges disabled by inline suppression comments.
type Enablement interface {
	Enabled(pos token.Position, rule string) bool
}

type Fixer struct {
	DryRun bool
}

func New(dryRun bool) *Fixer {
	return &Fixer{DryRun: dryRun}
}

// Fix rewrites every eligible `if (condition) {` in the file to
// `if condition {`, preserving the condition text verbatim. Eligible
// ranges are rewritten last-to-first so lower offsets stay valid while
// the text shrinks. On write failure the error is returned as-is and no
// corrections are reported. In dry-run mode nothing is written; the
// would-be rewrite is printed as a unified diff and the corrections it
// covers are still returned.
func (f *Fixer) Fix(filename string, file SourceFile, enablement Enablement) ([]tt.Correction, error) {
	src, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	classifier := classify.New(src)
	position := lints.NewPositioner(filename, src)

	var eligible []lints.Match
	for _, m := range lints.ScanStatement(src, lints.StatementIf, classifier) {
		if lints.IsFalsePositive(m.Text, m.Leading) {
			continue
		}
		if !enablement.Enabled(position(m.Offset), lints.RuleControlStatement) {
			continue
		}
		eligible = append(eligible, m)
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	// last occurrence first, so each splice only moves text to the
	// right of every remaining range
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Offset > eligible[j].Offset
	})

	// splice into a copy; src stays intact for the dry-run diff
	out := append([]byte(nil), src...)
	corrections := make([]tt.Correction, 0, len(eligible))
	for _, m := range eligible {
		corrections = append(corrections, tt.Correction{
			Rule:     lints.RuleControlStatement,
			Filename: filename,
			Position: position(m.Offset),
		})
		replacement := "if " + m.Condition + " {"
		tail := append([]byte(nil), out[m.Offset+m.Length:]...)
		out = append(out[:m.Offset], replacement...)
		out = append(out, tail...)
	}

	if f.DryRun {
		if err := printDiff(filename, src, out); err != nil {
			return nil, err
		}
		return corrections, nil
	}

	if err := file.Write(out); err != nil {
		return nil, err
	}
	return corrections, nil
}

// FixFile applies Fix to a file on disk, honoring its nolint comments.
func (f *Fixer) FixFile(path string) ([]tt.Correction, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return f.Fix(path, &memoryFile{path: path, contents: src}, nolint.Parse(src))
}

func printDiff(filename string, before, after []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: filename,
		ToFile:   filename + " (fixed)",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to build diff for %s: %w", filename, err)
	}
	fmt.Print(text)
	return nil
}

// memoryFile serves pre-read contents and writes back to disk.
type memoryFile struct {
	path     string
	contents []byte
}

func (m *memoryFile) Contents() ([]byte, error) { return m.contents, nil }

func (m *memoryFile) Write(b []byte) error {
	return os.WriteFile(m.path, b, 0o644)
}

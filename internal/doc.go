// Package internal provides the core functionality of the clin linting tool.
//
// This package implements the linting engine that scans Swift-style source
// files for control statements whose condition is wrapped in redundant
// parentheses. It is deliberately text based: rules operate on the raw
// source plus a minimal lexical classification, never on a parse tree.
//
// Key components:
//
// Engine: coordinates the linting process. It manages the registered lint
// rules, applies configured severities, and filters findings suppressed by
// nolint comments.
//
// LintRule: the contract all lint rules implement. Each rule checks the
// raw source of one file and returns the issues it found.
//
// SourceCode: a simple structure representing the content of a source file
// as a collection of lines, used by the issue formatter.
//
// The engine also supports a watch mode that re-lints files as they change
// on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(logger, config.Rules)
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("path/to/file.swift")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("found issue: %s at %s\n", issue.Message, issue.Start)
//	}
//
// This package is intended for internal use within the linting tool and
// should not be imported by external packages.
package internal

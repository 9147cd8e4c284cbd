package types

import "go/token"

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Severity   Severity
	Start      token.Position
	End        token.Position
}

// Correction records a single occurrence rewritten by the fixer.
// Position always refers to the text as it was before any rewriting.
type Correction struct {
	Rule     string
	Filename string
	Position token.Position
}

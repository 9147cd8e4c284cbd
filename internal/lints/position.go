package lints

import "go/token"

// NewPositioner maps byte offsets in src to token.Positions carrying
// filename, line, column and the offset itself.
func NewPositioner(filename string, src []byte) func(offset int) token.Position {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)
	return func(offset int) token.Position {
		return fset.Position(file.Pos(offset))
	}
}

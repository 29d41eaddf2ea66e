package emit

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// render prints a parsed fragment in canonical Go syntax. An empty file set
// carries no line information, so the printer keeps the fragment on one line
// wherever the syntax allows.
func render(e ast.Expr) string {
	if e == nil {
		return ""
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), e); err != nil {
		// printer only fails on writer errors; bytes.Buffer never returns one.
		panic(err)
	}

	return buf.String()
}

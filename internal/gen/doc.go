// Package gen turns the directives of a package into generated Go files.
//
// Each source file with directives gets one output file (types.go ->
// types_index.go by default) holding the accessors of all its directives in
// source order. Generation uses text/template for the file layout and
// golang.org/x/tools/imports to drop unused import candidates and format the
// result.
//
// A run is all-or-nothing per package: every problem is collected into
// diagnostic.Diagnostics and no file is produced while any error remains.
package gen

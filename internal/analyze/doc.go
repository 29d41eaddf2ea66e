// Package analyze finds index directives in Go packages.
//
// It loads packages with golang.org/x/tools/go/packages (syntax only, no type
// checking, so packages whose generated accessors are missing or stale still
// load) and extracts every comment group that starts with
//
//	//indexgen:index [key=value ...]
//
// The rest of the group is the invocation. Comment markers are blanked rather
// than removed, so positions reported while parsing the invocation point at
// the right line and column of the original file.
//
// Keep a directive group apart from declarations (a blank line after it).
// A group directly above a declaration is its doc comment, and gofmt moves
// directive lines to the end of doc comments.
package analyze

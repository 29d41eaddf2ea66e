package analyze

import (
	"go/token"
	"strconv"
)

// Package is a loaded package and its directives.
type Package struct {
	Name    string
	PkgPath string
	// Dir is the directory holding the package's files.
	Dir   string
	Files []*File
	// Generated lists the base names of generated files present in Dir.
	Generated []string
}

// File is one source file of a package.
type File struct {
	// Path is the file path as reported by the loader.
	Path string
	// Imports are the file's imports, candidates for the generated file.
	Imports    []Import
	Directives []Directive
}

// Import is one import spec of a source file.
type Import struct {
	// Name is the explicit import name, empty when there is none.
	Name string
	Path string
}

// String renders the import spec as it appears in an import block.
func (i Import) String() string {
	if i.Name == "" {
		return strconv.Quote(i.Path)
	}

	return i.Name + " " + strconv.Quote(i.Path)
}

// Directive is one //indexgen:index comment group.
type Directive struct {
	// Pos is the position of the directive marker.
	Pos     token.Position
	Options []Option
	// Source is the invocation text. Line i of Source is file line Line+i,
	// and columns match the file.
	Source []byte
	Line   int
}

// Option is one key=value pair on the directive line.
type Option struct {
	Key   string
	Value string
	Pos   token.Position
}

package parse

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a lexed token.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindIdent   // identifiers, including soft keywords and `_`
	KindKeyword // Go keywords (if, map, func, ...)
	KindLiteral // int, float, imag, char and string literals
	KindPunct   // operators and delimiters
	KindArrow   // `=>`, synthesized from adjacent `=` and `>`
	KindEOF

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Package parse turns the text of an index invocation into a spec.Specification.
//
// Grammar:
//
//	invocation       := [type_params] target_type 'by' key_type '=>' ['mut'] output_type ':' pairing_list
//	type_params      := '[' param_decl (',' param_decl)* [','] ']'
//	param_decl       := identifier (',' identifier)* constraint
//	pairing_list     := pairing (',' pairing)* [',']
//	pairing          := key_matcher '=>' storage_selector
//	key_matcher      := identifier | 'pat' pattern ['if' guard_expr]
//	pattern          := alternative ('|' alternative)*
//	alternative      := '_' | binder type | expression
//	storage_selector := identifier | 'pat' expression
//
// The words by, pat and mut are soft keywords: they are identifiers that the
// parser recognizes by text only where the grammar expects them.
//
// Types, constraints and expressions are Go syntax. Each is delimited by the
// grammar's follow tokens at bracket depth zero and validated with go/parser.
//
// A leading '[' may open a type parameter list or belong to the target type
// ([4]Cell, []Cell). The parser tries the parameter list on a forked cursor
// and commits only if it parses.
//
// Parsing is atomic: the result is either a complete Specification or a
// single *SyntaxError.
package parse

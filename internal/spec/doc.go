// Package spec holds the in-memory model of a parsed index invocation.
//
// The model is plain data. It is built once by the parser, consumed once by
// the emitter and then discarded. No validation happens here: grammar-level
// checks live in the parser and type-level checks are left to the Go
// compiler that builds the emitted code.
//
// Key types:
//   - Specification: one invocation (type params, target, key, output, pairings)
//   - Pairing: one key matcher paired with one storage selector
//   - Form: the shorthand-identifier vs full-form variant shared by
//     KeyMatcher and StorageSelector
//   - Pattern / Alternative: the full-form key matcher
package spec

// Package emit renders accessor methods from a spec.Specification.
//
// Generation approach mirrors the rest of the generator: the dispatch is
// planned into template data once, then rendered with text/template. The
// output is a list of Go declarations; callers format it with go/format.
//
// Emitted shapes:
//   - a value-returning read accessor (Index by default)
//   - a pointer-returning accessor (IndexPtr by default) when the invocation
//     is marked mut; it shares the read accessor's dispatch arms
//   - `switch key` dispatch when no arm needs a guard or a binding,
//     a first-match-wins if chain otherwise
//
// Emission is total and deterministic. Nothing is validated: type errors,
// non-addressable selectors and unreachable arms are reported by the Go
// compiler when the output is built.
package emit

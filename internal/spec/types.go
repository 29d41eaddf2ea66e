package spec

import (
	"go/ast"
	"go/token"
)

// Specification is one parsed invocation.
type Specification struct {
	// TypeParams is nil when the invocation declares no type parameters.
	TypeParams *TypeParamList
	// Target is the record type the accessors are attached to.
	Target TypeExpr
	// Key is the discriminant type the accessors dispatch on.
	Key TypeExpr
	// Output is the element type shared by every storage location.
	Output TypeExpr
	// Mutable requests the pointer-returning accessor in addition to the
	// value-returning one.
	Mutable bool
	// Pairings are kept in input order; it is the dispatch order.
	Pairings []Pairing
}

// PairingCount returns the number of pairings.
func (s *Specification) PairingCount() int {
	return len(s.Pairings)
}

// TypeParamList is a declared type parameter list, e.g. [K comparable, V any].
type TypeParamList struct {
	Pos    token.Pos
	Params []TypeParam
}

// Names returns the parameter names in declaration order.
func (l *TypeParamList) Names() []string {
	if l == nil {
		return nil
	}

	var names []string
	for _, p := range l.Params {
		for _, n := range p.Names {
			names = append(names, n.Name)
		}
	}

	return names
}

// TypeParam is one parameter declaration: a group of names sharing a constraint.
type TypeParam struct {
	Names      []Ident
	Constraint Expr
}

// Pairing binds one key matcher to one storage selector.
type Pairing struct {
	Key     KeyMatcher
	Storage StorageSelector
}

// KeyMatcher is a shorthand tag name or a full pattern with optional guard.
type KeyMatcher = Form[Pattern]

// StorageSelector is a shorthand field name or a full expression.
type StorageSelector = Form[Expr]

// FormKind discriminates the two cases of Form.
type FormKind int

const (
	// FormShorthand is a bare identifier.
	FormShorthand FormKind = iota
	// FormFull is the full form introduced by the pat keyword.
	FormFull
)

// String returns a human-readable form kind name.
func (k FormKind) String() string {
	switch k {
	case FormShorthand:
		return "shorthand"
	case FormFull:
		return "full"
	default:
		return "unknown"
	}
}

// Form is either a shorthand identifier or a full form of type T.
// Only the field selected by Kind is meaningful.
type Form[T any] struct {
	Kind  FormKind
	Ident Ident
	Full  T
}

// Shorthand builds a shorthand form.
func Shorthand[T any](id Ident) Form[T] {
	return Form[T]{Kind: FormShorthand, Ident: id}
}

// Full builds a full form.
func Full[T any](v T) Form[T] {
	return Form[T]{Kind: FormFull, Full: v}
}

// IsShorthand reports whether f holds a bare identifier.
func (f Form[T]) IsShorthand() bool {
	return f.Kind == FormShorthand
}

// Pattern is a structural matcher over the key type plus an optional guard.
// It matches when any alternative matches and the guard (if any) holds.
type Pattern struct {
	Alternatives []Alternative
	Guard        *Expr
}

// IsCatchAll reports whether the pattern matches every key unconditionally.
func (p Pattern) IsCatchAll() bool {
	if p.Guard != nil {
		return false
	}

	for _, alt := range p.Alternatives {
		if alt.Kind == AltWildcard {
			return true
		}
	}

	return false
}

// Binding returns the binding alternative, if the pattern is one.
func (p Pattern) Binding() (Alternative, bool) {
	if len(p.Alternatives) == 1 && p.Alternatives[0].Kind == AltBinding {
		return p.Alternatives[0], true
	}

	return Alternative{}, false
}

// AltKind discriminates pattern alternatives.
type AltKind int

const (
	// AltWildcard is the `_` pattern.
	AltWildcard AltKind = iota
	// AltValue compares the key against an expression.
	AltValue
	// AltBinding asserts the key to a type and binds the result.
	AltBinding
)

// String returns a human-readable alternative kind name.
func (k AltKind) String() string {
	switch k {
	case AltWildcard:
		return "wildcard"
	case AltValue:
		return "value"
	case AltBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// Alternative is one `|`-separated branch of a pattern.
type Alternative struct {
	Kind AltKind
	Pos  token.Pos
	// Value is set for AltValue.
	Value Expr
	// Binder and Type are set for AltBinding. Binder may be `_`.
	Binder Ident
	Type   TypeExpr
}

// Ident is an identifier with its position.
type Ident struct {
	Name string
	Pos  token.Pos
}

// Expr is a parsed Go expression fragment.
type Expr struct {
	Node ast.Expr
	Pos  token.Pos
}

// TypeExpr is a parsed Go type fragment. Types are syntactically expressions.
type TypeExpr = Expr

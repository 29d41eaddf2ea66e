package parse

import (
	"errors"
	"go/ast"
	goparser "go/parser"
	"go/scanner"
	"go/token"
	"sort"
	"strings"

	"index-generator/internal/spec"
)

// parseFragment validates a run of tokens as one Go expression. The tokens
// are re-joined with single spaces, so line breaks inside the run do not
// trigger semicolon insertion.
func (p *parser) parseFragment(toks []Token, what string) (spec.Expr, error) {
	if len(toks) == 0 {
		return spec.Expr{}, p.errorf(p.c.Peek(), "expected %s, found %s", what, p.c.Peek())
	}

	var sb strings.Builder

	offsets := make([]int, len(toks))

	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}

		offsets[i] = sb.Len()
		sb.WriteString(t.Text)
	}

	node, err := goparser.ParseExprFrom(token.NewFileSet(), "", sb.String(), goparser.SkipObjectResolution)
	if err != nil {
		anchor := toks[0]
		msg := err.Error()

		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			msg = list[0].Msg

			off := list[0].Pos.Offset
			if i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > off }) - 1; i >= 0 {
				anchor = toks[i]
			}
		}

		return spec.Expr{}, p.errorf(anchor, "malformed %s: %s", what, msg)
	}

	return spec.Expr{Node: node, Pos: toks[0].Pos}, nil
}

// parseType is parseFragment restricted to type-shaped expressions.
func (p *parser) parseType(toks []Token, what string) (spec.TypeExpr, error) {
	expr, err := p.parseFragment(toks, what)
	if err != nil {
		return spec.TypeExpr{}, err
	}

	if !isType(expr.Node) {
		return spec.TypeExpr{}, p.errorf(toks[0], "malformed %s: expression is not a type", what)
	}

	return expr, nil
}

// isType reports whether e has the syntactic shape of a Go type.
func isType(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isType(t.X)
	case *ast.ParenExpr:
		return isType(t.X)
	case *ast.ArrayType:
		return isType(t.Elt)
	case *ast.MapType:
		return isType(t.Key) && isType(t.Value)
	case *ast.ChanType:
		return isType(t.Value)
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.IndexExpr:
		return isType(t.X) && isType(t.Index)
	case *ast.IndexListExpr:
		if !isType(t.X) {
			return false
		}

		for _, idx := range t.Indices {
			if !isType(idx) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// isConstraint reports whether e is a type or a type set such as ~int | string.
func isConstraint(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.BinaryExpr:
		return t.Op == token.OR && isConstraint(t.X) && isConstraint(t.Y)
	case *ast.UnaryExpr:
		return t.Op == token.TILDE && isType(t.X)
	default:
		return isType(e)
	}
}

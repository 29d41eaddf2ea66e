package emit

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"index-generator/internal/spec"
)

// Accessor is one method to render.
type Accessor struct {
	Name     string
	Doc      string
	NoInline bool
	// Ref marks the pointer-returning accessor; its arms take the address
	// of the selected storage.
	Ref      bool
	Receiver string
	RecvType string
	KeyParam string
	KeyType  string
	Result   string
	// Dispatch is shared by every accessor of one specification.
	Dispatch *Dispatch
}

// Dispatch is the value dispatch shared by the read and pointer accessors.
type Dispatch struct {
	// Switch selects a tagless `switch { case key == ...: }` instead of an
	// if chain.
	Switch bool
	Arms   []Arm
	// Unmatched is the panic message used when no arm matches; empty when
	// the last arm is unconditional.
	Unmatched string
}

// Arm is one pairing in dispatch form.
type Arm struct {
	// Init is the if-statement initializer of a binding arm.
	Init string
	// Cond is the if condition; empty for an unconditional arm.
	Cond string
	// Cases are the switch case conditions; empty for the default case.
	Cases []string
	// Storage is the selected storage expression, without address-of.
	Storage string
}

// Unconditional reports whether the arm matches every key.
func (a Arm) Unconditional() bool {
	return a.Init == "" && a.Cond == ""
}

// Plan builds the accessors for s. The dispatch is built once; the pointer
// accessor reuses it so both stay in lock-step. A specification without
// pairings yields accessors that always panic.
func Plan(s *spec.Specification, opts Options) []Accessor {
	target := render(s.Target.Node)
	base := baseName(s.Target.Node)
	keyParam := opts.KeyParam

	b := &planner{spec: s, opts: opts, recv: opts.Receiver}
	if b.recv == "" {
		b.recv = receiverName(base, b.names())
	}

	recv := b.recv

	recvType := target
	if names := s.TypeParams.Names(); len(names) > 0 {
		recvType += "[" + strings.Join(names, ", ") + "]"
	}

	recvType = "*" + recvType

	output := render(s.Output.Node)
	noInline := opts.NoInlineThreshold > 0 && s.PairingCount() >= opts.NoInlineThreshold

	if base == "" {
		base = target
	}

	dispatch := b.dispatch()

	read := Accessor{
		Name:     opts.Get,
		NoInline: noInline,
		Receiver: recv,
		RecvType: recvType,
		KeyParam: keyParam,
		KeyType:  render(s.Key.Node),
		Result:   output,
		Dispatch: dispatch,
	}

	if opts.Comments {
		read.Doc = read.Name + " returns the " + output + " stored in " + recv + " for " + keyParam + "."
	}

	accessors := []Accessor{read}

	if s.Mutable {
		ref := read
		ref.Name = opts.Ref
		ref.Ref = true
		ref.Result = "*" + output

		if opts.Comments {
			ref.Doc = ref.Name + " returns a pointer to the " + output + " stored in " + recv + " for " + keyParam + "."
		}

		accessors = append(accessors, ref)
	}

	if dispatch.Unmatched != "" {
		for i := range accessors {
			a := &accessors[i]
			// Each accessor gets its own copy so the panic names the right method.
			d := *dispatch
			d.Unmatched = base + "." + a.Name + ": no storage for " + keyParam
			a.Dispatch = &d
		}
	}

	return accessors
}

type planner struct {
	spec *spec.Specification
	opts Options
	recv string
}

func (b *planner) dispatch() *Dispatch {
	d := &Dispatch{Switch: b.canSwitch()}

	for _, pr := range b.spec.Pairings {
		arm := Arm{Storage: b.storage(pr.Storage)}

		if d.Switch {
			arm.Cases = b.cases(pr.Key)
		} else {
			arm.Init, arm.Cond = b.condition(pr.Key)
		}

		d.Arms = append(d.Arms, arm)
	}

	exhaustive := false
	if n := len(d.Arms); n > 0 {
		last := d.Arms[n-1]

		exhaustive = last.Unconditional()
		if d.Switch {
			exhaustive = len(last.Cases) == 0
		}
	}

	if !exhaustive {
		d.Unmatched = "no storage for " + b.opts.KeyParam
	}

	return d
}

// canSwitch reports whether every arm is a plain list of values, with at
// most a trailing catch-all. A catch-all anywhere else would change meaning
// as a switch default. The switch is tagless, so two constants of the same
// value are not duplicate cases and the first one still wins.
func (b *planner) canSwitch() bool {
	values := 0

	for i, pr := range b.spec.Pairings {
		if !pr.Key.IsShorthand() {
			pat := pr.Key.Full
			if pat.Guard != nil {
				return false
			}

			if _, ok := pat.Binding(); ok {
				return false
			}

			if pat.IsCatchAll() {
				if i != len(b.spec.Pairings)-1 {
					return false
				}

				continue
			}
		}

		values++
	}

	return values > 0
}

func (b *planner) cases(key spec.KeyMatcher) []string {
	if key.IsShorthand() {
		return []string{b.equals(b.shorthandKey(key.Ident), nil)}
	}

	if key.Full.IsCatchAll() {
		return nil
	}

	out := make([]string, 0, len(key.Full.Alternatives))
	for _, alt := range key.Full.Alternatives {
		out = append(out, b.equals(render(alt.Value.Node), alt.Value.Node))
	}

	return out
}

// equals compares the key parameter with the value v parsed as node.
func (b *planner) equals(v string, node ast.Expr) string {
	if node != nil && isBinary(node, token.EQL.Precedence()) {
		v = "(" + v + ")"
	}

	return b.opts.KeyParam + " == " + v
}

func (b *planner) condition(key spec.KeyMatcher) (string, string) {
	param := b.opts.KeyParam

	if key.IsShorthand() {
		return "", b.equals(b.shorthandKey(key.Ident), nil)
	}

	pat := key.Full

	var guard string
	if pat.Guard != nil {
		guard = render(pat.Guard.Node)
		if isBinary(pat.Guard.Node, token.LOR.Precedence()) {
			guard = "(" + guard + ")"
		}
	}

	if alt, ok := pat.Binding(); ok {
		init := alt.Binder.Name + ", ok := " + param + ".(" + render(alt.Type.Node) + ")"
		return init, join("ok", guard)
	}

	if pat.IsCatchAll() || catchAllAlternative(pat) {
		return "", guard
	}

	conds := make([]string, 0, len(pat.Alternatives))
	for _, alt := range pat.Alternatives {
		conds = append(conds, b.equals(render(alt.Value.Node), alt.Value.Node))
	}

	cond := strings.Join(conds, " || ")
	if len(conds) > 1 && guard != "" {
		cond = "(" + cond + ")"
	}

	return "", join(cond, guard)
}

func (b *planner) storage(sel spec.StorageSelector) string {
	if sel.IsShorthand() {
		return b.recv + "." + sel.Ident.Name
	}

	return b.recv + "." + render(sel.Full.Node)
}

func (b *planner) shorthandKey(id spec.Ident) string {
	if b.opts.Shorthand == ShorthandBare {
		return id.Name
	}

	prefix := typeName(b.spec.Key.Node)
	if prefix == "" {
		return id.Name
	}

	return prefix + id.Name
}

func catchAllAlternative(p spec.Pattern) bool {
	for _, alt := range p.Alternatives {
		if alt.Kind == spec.AltWildcard {
			return true
		}
	}

	return false
}

func join(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " && " + b
	}
}

// isBinary reports whether e is a binary expression binding no tighter than prec.
func isBinary(e ast.Expr, prec int) bool {
	bin, ok := e.(*ast.BinaryExpr)
	return ok && bin.Op.Precedence() <= prec
}

// typeName returns the (possibly package-qualified) name of a named type,
// dropping type arguments: Key -> Key, pkg.Key -> pkg.Key, Key[T] -> Key.
func typeName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name + "." + t.Sel.Name
		}
	case *ast.IndexExpr:
		return typeName(t.X)
	case *ast.IndexListExpr:
		return typeName(t.X)
	case *ast.ParenExpr:
		return typeName(t.X)
	}

	return ""
}

// baseName is typeName without the package qualifier.
func baseName(e ast.Expr) string {
	name := typeName(e)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// names returns the identifiers the accessor body refers to besides the
// receiver: the key parameter, the `ok` of type assertions, type parameters,
// binders and every free identifier of patterns, guards and storage paths.
func (b *planner) names() map[string]bool {
	taken := map[string]bool{b.opts.KeyParam: true, "ok": true}

	for _, name := range b.spec.TypeParams.Names() {
		taken[name] = true
	}

	for _, pr := range b.spec.Pairings {
		if pr.Key.IsShorthand() {
			taken[b.shorthandKey(pr.Key.Ident)] = true
		} else {
			for _, alt := range pr.Key.Full.Alternatives {
				switch alt.Kind {
				case spec.AltBinding:
					taken[alt.Binder.Name] = true
					collectIdents(alt.Type.Node, taken)
				case spec.AltValue:
					collectIdents(alt.Value.Node, taken)
				}
			}

			if g := pr.Key.Full.Guard; g != nil {
				collectIdents(g.Node, taken)
			}
		}

		// The root of a storage path is a field of the receiver, not a free
		// identifier.
		if !pr.Storage.IsShorthand() {
			collectIdents(pr.Storage.Full.Node, taken, pathRoot(pr.Storage.Full.Node))
		}
	}

	return taken
}

// collectIdents adds the identifiers of e to set, except field and method
// names after a dot and the identifiers in skip.
func collectIdents(e ast.Expr, set map[string]bool, skip ...*ast.Ident) {
	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			collectIdents(n.X, set, skip...)
			return false
		case *ast.Ident:
			for _, s := range skip {
				if n == s {
					return false
				}
			}

			set[n.Name] = true
		}

		return true
	})
}

// pathRoot returns the leftmost identifier of a storage path: arr in
// arr[i].x, nil when the path does not start with one.
func pathRoot(e ast.Expr) *ast.Ident {
	for {
		switch t := e.(type) {
		case *ast.Ident:
			return t
		case *ast.SelectorExpr:
			e = t.X
		case *ast.IndexExpr:
			e = t.X
		case *ast.IndexListExpr:
			e = t.X
		case *ast.SliceExpr:
			e = t.X
		case *ast.CallExpr:
			e = t.Fun
		default:
			return nil
		}
	}
}

// receiverName derives a receiver name from the type name (Struct -> s),
// falling back to r, r1, r2... when the name is taken.
func receiverName(typeName string, taken map[string]bool) string {
	if r, _ := utf8.DecodeRuneInString(typeName); r != utf8.RuneError && unicode.IsLetter(r) {
		if name := string(unicode.ToLower(r)); !taken[name] {
			return name
		}
	}

	name := "r"
	for i := 1; taken[name]; i++ {
		name = "r" + strconv.Itoa(i)
	}

	return name
}

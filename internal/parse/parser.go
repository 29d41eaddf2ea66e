package parse

import (
	"fmt"
	"go/token"
	"log/slog"

	"index-generator/internal/spec"
	"index-generator/internal/suggest"
)

// Soft keywords.
const (
	wordBy  = "by"
	wordPat = "pat"
	wordMut = "mut"
)

// Option configures Parse.
type Option func(*config)

type config struct {
	filename string
	line     int
	fset     *token.FileSet
	logger   *slog.Logger
}

// WithFilename sets the file name reported in positions.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithLine sets the line number of the first input byte.
func WithLine(line int) Option {
	return func(c *config) { c.line = line }
}

// WithFileSet registers the input in fset instead of a private file set.
func WithFileSet(fset *token.FileSet) Option {
	return func(c *config) { c.fset = fset }
}

// WithLogger sets the debug logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Parse parses one invocation.
func Parse(src []byte, opts ...Option) (*spec.Specification, error) {
	cfg := config{filename: "<input>", line: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fset == nil {
		cfg.fset = token.NewFileSet()
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	toks, err := Lex(cfg.fset, cfg.filename, src, cfg.line)
	if err != nil {
		return nil, err
	}

	p := &parser{
		c:      NewCursor(toks),
		fset:   cfg.fset,
		logger: logger.With(slog.String("component", "parser")),
	}

	s, err := p.parseInvocation()
	if err != nil {
		p.logger.Debug("parse failed", slog.String("error", err.Error()))
		return nil, err
	}

	p.logger.Debug("parsed invocation",
		slog.Int("pairings", len(s.Pairings)),
		slog.Bool("mutable", s.Mutable),
		slog.Bool("type_params", s.TypeParams != nil))

	return s, nil
}

type parser struct {
	c      *Cursor
	fset   *token.FileSet
	logger *slog.Logger
}

func (p *parser) errorf(at Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Pos:        p.fset.Position(at.Pos),
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: at.Kind == KindEOF,
	}
}

// expectedWord builds the error for a missing soft keyword, suggesting the
// keyword when one of the tokens around the failure looks like a typo of it.
func (p *parser) expectedWord(word, after string, near []Token) *SyntaxError {
	for _, t := range near {
		if t.Kind != KindIdent {
			continue
		}

		if s := suggest.Closest(t.Text, []string{word}); s != "" {
			err := p.errorf(t, "expected %q after %s, found %s", word, after, t)
			err.Suggestion = s

			return err
		}
	}

	return p.errorf(p.c.Peek(), "expected %q after %s, found %s", word, after, p.c.Peek())
}

func (p *parser) parseInvocation() (*spec.Specification, error) {
	s := &spec.Specification{}

	if p.c.Peek().Tok == token.LBRACK {
		fork := p.c.Fork()
		speculative := &parser{c: fork, fset: p.fset, logger: p.logger}

		params, err := speculative.parseTypeParams()
		if err == nil {
			p.c.Commit(fork)
			s.TypeParams = params
		} else {
			p.logger.Debug("leading '[' is not a type parameter list", slog.String("reason", err.Error()))
		}
	}

	targetToks := p.c.Collect(func(t Token) bool { return t.IsWord(wordBy) || t.Kind == KindArrow })
	if !p.c.PeekWord(wordBy) {
		if len(targetToks) == 0 {
			return nil, p.errorf(p.c.Peek(), "expected target type, found %s", p.c.Peek())
		}

		return nil, p.expectedWord(wordBy, "target type", targetToks[1:])
	}

	target, err := p.parseType(targetToks, "target type")
	if err != nil {
		return nil, err
	}

	s.Target = target
	p.c.Next()

	keyToks := p.c.Collect(func(t Token) bool { return t.Kind == KindArrow })

	key, err := p.parseType(keyToks, "key type")
	if err != nil {
		return nil, err
	}

	s.Key = key

	if err := p.expectArrow("key type"); err != nil {
		return nil, err
	}

	// `=> mut:` names an output type called mut.
	if p.c.PeekWord(wordMut) && p.c.PeekN(1).Tok != token.COLON {
		p.c.Next()
		s.Mutable = true
	}

	outputToks := p.c.Collect(func(t Token) bool { return t.Tok == token.COLON })

	output, err := p.parseType(outputToks, "output type")
	if err != nil {
		return nil, err
	}

	s.Output = output

	if p.c.Peek().Tok != token.COLON {
		return nil, p.errorf(p.c.Peek(), "expected ':' after output type, found %s", p.c.Peek())
	}

	p.c.Next()

	pairings, err := p.parsePairings()
	if err != nil {
		return nil, err
	}

	s.Pairings = pairings

	return s, nil
}

func (p *parser) expectArrow(after string) error {
	if p.c.Peek().Kind != KindArrow {
		return p.errorf(p.c.Peek(), "expected \"=>\" after %s, found %s", after, p.c.Peek())
	}

	p.c.Next()

	return nil
}

// parseTypeParams parses `[` param_decl {`,` param_decl} [`,`] `]`.
func (p *parser) parseTypeParams() (*spec.TypeParamList, error) {
	open := p.c.Next()
	list := &spec.TypeParamList{Pos: open.Pos}

	for {
		var names []spec.Ident

		for {
			t := p.c.Peek()
			if t.Kind != KindIdent {
				return nil, p.errorf(t, "expected type parameter name, found %s", t)
			}

			p.c.Next()
			names = append(names, spec.Ident{Name: t.Text, Pos: t.Pos})

			if p.c.Peek().Tok != token.COMMA {
				break
			}

			p.c.Next()
		}

		constraintToks := p.c.Collect(func(t Token) bool {
			return t.Tok == token.COMMA || t.Tok == token.RBRACK
		})
		if len(constraintToks) == 0 {
			return nil, p.errorf(p.c.Peek(), "expected constraint for type parameter %s, found %s",
				names[len(names)-1].Name, p.c.Peek())
		}

		constraint, err := p.parseFragment(constraintToks, "type constraint")
		if err != nil {
			return nil, err
		}

		if !isConstraint(constraint.Node) {
			return nil, p.errorf(constraintToks[0], "malformed type constraint: expected type or type set")
		}

		list.Params = append(list.Params, spec.TypeParam{Names: names, Constraint: constraint})

		switch t := p.c.Peek(); t.Tok {
		case token.COMMA:
			p.c.Next()

			if p.c.Peek().Tok == token.RBRACK {
				p.c.Next()
				return list, nil
			}
		case token.RBRACK:
			p.c.Next()
			return list, nil
		default:
			return nil, p.errorf(t, "expected ',' or ']' in type parameter list, found %s", t)
		}
	}
}

func (p *parser) parsePairings() ([]spec.Pairing, error) {
	if p.c.AtEOF() {
		return nil, p.errorf(p.c.Peek(), "expected at least one pairing, found %s", p.c.Peek())
	}

	var pairings []spec.Pairing

	for {
		pr, err := p.parsePairing()
		if err != nil {
			return nil, err
		}

		pairings = append(pairings, pr)

		if p.c.AtEOF() {
			return pairings, nil
		}

		if t := p.c.Peek(); t.Tok != token.COMMA {
			return nil, p.errorf(t, "expected ',' or end of input after pairing, found %s", t)
		}

		p.c.Next()

		if p.c.AtEOF() {
			return pairings, nil
		}
	}
}

func (p *parser) parsePairing() (spec.Pairing, error) {
	key, err := p.parseKeyMatcher()
	if err != nil {
		return spec.Pairing{}, err
	}

	if err := p.expectArrow("key matcher"); err != nil {
		return spec.Pairing{}, err
	}

	storage, err := p.parseStorageSelector()
	if err != nil {
		return spec.Pairing{}, err
	}

	return spec.Pairing{Key: key, Storage: storage}, nil
}

func (p *parser) parseKeyMatcher() (spec.KeyMatcher, error) {
	if p.c.PeekWord(wordPat) {
		p.c.Next()

		pat, err := p.parsePattern()
		if err != nil {
			return spec.KeyMatcher{}, err
		}

		return spec.Full(pat), nil
	}

	t := p.c.Peek()
	if t.Kind != KindIdent {
		return spec.KeyMatcher{}, p.errorf(t, "expected key matcher (identifier or %q pattern), found %s", wordPat, t)
	}

	if t.Text == "_" {
		err := p.errorf(t, "wildcard key must be written as a pattern")
		err.Suggestion = wordPat + " _"

		return spec.KeyMatcher{}, err
	}

	p.c.Next()

	if p.c.Peek().Kind != KindArrow {
		if s := suggest.Closest(t.Text, []string{wordPat}); s != "" {
			err := p.errorf(t, "unexpected %s after shorthand key %q", p.c.Peek(), t.Text)
			err.Suggestion = s

			return spec.KeyMatcher{}, err
		}
	}

	return spec.Shorthand[spec.Pattern](spec.Ident{Name: t.Text, Pos: t.Pos}), nil
}

func (p *parser) parsePattern() (spec.Pattern, error) {
	var pat spec.Pattern

	for {
		toks := p.c.Collect(func(t Token) bool {
			return t.Tok == token.OR || t.Tok == token.IF || t.Kind == KindArrow
		})

		alt, err := p.parseAlternative(toks)
		if err != nil {
			return spec.Pattern{}, err
		}

		pat.Alternatives = append(pat.Alternatives, alt)

		if p.c.Peek().Tok != token.OR {
			break
		}

		p.c.Next()
	}

	if len(pat.Alternatives) > 1 {
		for _, alt := range pat.Alternatives {
			if alt.Kind == spec.AltBinding {
				return spec.Pattern{}, &SyntaxError{
					Pos: p.fset.Position(alt.Pos),
					Msg: "binding pattern cannot be combined with other alternatives",
				}
			}
		}
	}

	if p.c.Peek().Tok == token.IF {
		ifTok := p.c.Next()

		guardToks := p.c.Collect(func(t Token) bool { return t.Kind == KindArrow })
		if len(guardToks) == 0 {
			return spec.Pattern{}, p.errorf(p.c.Peek(), "expected guard expression after %q, found %s", ifTok.Text, p.c.Peek())
		}

		guard, err := p.parseFragment(guardToks, "guard expression")
		if err != nil {
			return spec.Pattern{}, err
		}

		pat.Guard = &guard
	}

	return pat, nil
}

func (p *parser) parseAlternative(toks []Token) (spec.Alternative, error) {
	if len(toks) == 0 {
		return spec.Alternative{}, p.errorf(p.c.Peek(), "expected pattern, found %s", p.c.Peek())
	}

	first := toks[0]

	if len(toks) == 1 && first.IsWord("_") {
		return spec.Alternative{Kind: spec.AltWildcard, Pos: first.Pos}, nil
	}

	if first.Kind == KindIdent && len(toks) > 1 && startsBindingType(toks[1:]) {
		typ, err := p.parseType(toks[1:], "type in binding pattern")
		if err != nil {
			return spec.Alternative{}, err
		}

		return spec.Alternative{
			Kind:   spec.AltBinding,
			Pos:    first.Pos,
			Binder: spec.Ident{Name: first.Text, Pos: first.Pos},
			Type:   typ,
		}, nil
	}

	value, err := p.parseFragment(toks, "pattern")
	if err != nil {
		return spec.Alternative{}, err
	}

	return spec.Alternative{Kind: spec.AltValue, Pos: first.Pos, Value: value}, nil
}

// startsBindingType reports whether toks, following a binder identifier,
// begin a type rather than continue a value expression. `n *T` is read as a
// binding; multiplication in a value pattern has to be parenthesized.
func startsBindingType(toks []Token) bool {
	t := toks[0]

	switch {
	case t.Kind == KindIdent:
		return true
	case t.Tok == token.MUL, t.Tok == token.ARROW:
		return true
	case t.Tok == token.MAP, t.Tok == token.CHAN, t.Tok == token.FUNC,
		t.Tok == token.STRUCT, t.Tok == token.INTERFACE:
		return true
	case t.Tok == token.LBRACK:
		return len(toks) > 1 && toks[1].Tok == token.RBRACK
	}

	return false
}

func (p *parser) parseStorageSelector() (spec.StorageSelector, error) {
	if p.c.PeekWord(wordPat) {
		p.c.Next()

		toks := p.c.Collect(func(t Token) bool { return t.Tok == token.COMMA })
		if len(toks) == 0 {
			return spec.StorageSelector{}, p.errorf(p.c.Peek(), "expected storage expression after %q, found %s", wordPat, p.c.Peek())
		}

		expr, err := p.parseFragment(toks, "storage expression")
		if err != nil {
			return spec.StorageSelector{}, err
		}

		return spec.Full(expr), nil
	}

	t := p.c.Peek()
	if t.Kind != KindIdent || t.Text == "_" {
		return spec.StorageSelector{}, p.errorf(t, "expected field name or %q expression, found %s", wordPat, t)
	}

	p.c.Next()

	if next := p.c.Peek(); next.Kind != KindEOF && next.Tok != token.COMMA {
		return spec.StorageSelector{}, p.errorf(next,
			"unexpected %s after shorthand field %q; use %q for expressions", next, t.Text, wordPat)
	}

	return spec.Shorthand[spec.Expr](spec.Ident{Name: t.Text, Pos: t.Pos}), nil
}

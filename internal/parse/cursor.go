package parse

// Cursor walks a token slice. The last token is always KindEOF; reading
// past it keeps returning it.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor returns a cursor over toks, which must end with a KindEOF token.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	return c.PeekN(0)
}

// PeekN returns the token n positions ahead without consuming anything.
func (c *Cursor) PeekN(n int) Token {
	i := c.pos + n
	if i >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}

	return c.toks[i]
}

// Next consumes and returns the current token.
func (c *Cursor) Next() Token {
	t := c.Peek()
	if c.pos < len(c.toks)-1 {
		c.pos++
	}

	return t
}

// PeekWord reports whether the current token is the identifier word.
// Nothing is consumed on a mismatch.
func (c *Cursor) PeekWord(word string) bool {
	return c.Peek().IsWord(word)
}

// AtEOF reports whether all tokens are consumed.
func (c *Cursor) AtEOF() bool {
	return c.Peek().Kind == KindEOF
}

// Fork returns an independent cursor at the same position. Advancing the
// fork leaves c untouched until Commit.
func (c *Cursor) Fork() *Cursor {
	f := *c
	return &f
}

// Commit moves c to the position reached by fork.
func (c *Cursor) Commit(fork *Cursor) {
	c.pos = fork.pos
}

// Collect consumes tokens up to, not including, the first token at bracket
// depth zero for which stop returns true. An unmatched closing bracket and
// EOF also end the run.
func (c *Cursor) Collect(stop func(Token) bool) []Token {
	var out []Token

	depth := 0

	for {
		t := c.Peek()
		if t.Kind == KindEOF {
			return out
		}

		if depth == 0 && stop(t) {
			return out
		}

		if t.Kind == KindPunct {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth == 0 {
					return out
				}

				depth--
			}
		}

		out = append(out, c.Next())
	}
}

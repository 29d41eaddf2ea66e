package parse

import (
	"go/scanner"
	"go/token"
)

// Token is one lexed token of an invocation.
type Token struct {
	Kind Kind
	// Tok is the underlying Go token. It is token.ILLEGAL for KindArrow and
	// token.EOF for KindEOF.
	Tok  token.Token
	Text string
	Pos  token.Pos
	End  token.Pos
}

// IsWord reports whether t is the identifier word. Soft keywords are
// recognized this way only at the grammar positions that expect them.
func (t Token) IsWord(word string) bool {
	return t.Kind == KindIdent && t.Text == word
}

// String returns the token text for diagnostics.
func (t Token) String() string {
	if t.Kind == KindEOF {
		return "end of input"
	}

	return "\"" + t.Text + "\""
}

// Lex tokenizes src with the Go scanner. Positions are registered in fset
// under filename, shifted so the first byte of src reports line `line`.
//
// Newline-inserted semicolons are dropped outside braces so an invocation may
// span several lines; `=` immediately followed by `>` becomes one KindArrow.
func Lex(fset *token.FileSet, filename string, src []byte, line int) ([]Token, error) {
	file := fset.AddFile(filename, -1, len(src))
	if line > 1 {
		file.AddLineColumnInfo(0, filename, line, 1)
	}

	var firstErr *SyntaxError

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &SyntaxError{Pos: pos, Msg: msg}
		}
	}, 0)

	var toks []Token

	braces := 0

	for {
		pos, tok, lit := s.Scan()
		if firstErr != nil {
			return nil, firstErr
		}

		if tok == token.EOF {
			toks = append(toks, Token{Kind: KindEOF, Tok: token.EOF, Pos: pos, End: pos})
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			if braces == 0 {
				continue
			}

			toks = append(toks, Token{Kind: KindPunct, Tok: tok, Text: ";", Pos: pos, End: pos})

			continue
		}

		switch tok {
		case token.LBRACE:
			braces++
		case token.RBRACE:
			if braces > 0 {
				braces--
			}
		case token.ILLEGAL:
			return nil, &SyntaxError{Pos: fset.Position(pos), Msg: "illegal token " + lit}
		}

		text := lit
		if text == "" {
			text = tok.String()
		}

		end := pos + token.Pos(len(text))

		if tok == token.GTR && len(toks) > 0 {
			last := &toks[len(toks)-1]
			if last.Tok == token.ASSIGN && last.End == pos {
				last.Kind = KindArrow
				last.Tok = token.ILLEGAL
				last.Text = "=>"
				last.End = end

				continue
			}
		}

		toks = append(toks, Token{Kind: classify(tok), Tok: tok, Text: text, Pos: pos, End: end})
	}

	return toks, nil
}

func classify(tok token.Token) Kind {
	switch {
	case tok == token.IDENT:
		return KindIdent
	case tok.IsKeyword():
		return KindKeyword
	case tok.IsLiteral():
		return KindLiteral
	default:
		return KindPunct
	}
}

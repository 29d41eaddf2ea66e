package parse

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_StickyEOF(t *testing.T) {
	c := NewCursor(lex(t, "a"))

	assert.Equal(t, "a", c.Next().Text)
	assert.True(t, c.AtEOF())
	assert.Equal(t, KindEOF, c.Next().Kind)
	assert.Equal(t, KindEOF, c.Next().Kind)
	assert.Equal(t, KindEOF, c.PeekN(5).Kind)
}

func TestCursor_PeekWord(t *testing.T) {
	c := NewCursor(lex(t, "by pat"))

	assert.False(t, c.PeekWord("pat"))
	assert.True(t, c.PeekWord("by"))
	assert.Equal(t, "by", c.Peek().Text, "PeekWord does not consume")
	assert.Equal(t, "pat", c.PeekN(1).Text)
}

func TestCursor_ForkAndCommit(t *testing.T) {
	c := NewCursor(lex(t, "a b c"))

	fork := c.Fork()
	fork.Next()
	fork.Next()

	assert.Equal(t, "a", c.Peek().Text, "fork must not move the parent")

	c.Commit(fork)
	assert.Equal(t, "c", c.Peek().Text)
}

func TestCursor_Collect(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
		next string
	}{
		{"stops at comma", "a , b", []string{"a"}, ","},
		{"nested comma", "f(a, b) , c", []string{"f", "(", "a", ",", "b", ")"}, ","},
		{"index comma", "m[k, v] , c", []string{"m", "[", "k", ",", "v", "]"}, ","},
		{"unmatched closer", "a ) , b", []string{"a"}, ")"},
		{"until eof", "a b", []string{"a", "b"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(lex(t, tt.src))

			got := c.Collect(func(tok Token) bool { return tok.Tok == token.COMMA })
			assert.Equal(t, tt.want, texts(got))
			assert.Equal(t, tt.next, c.Peek().Text)
		})
	}
}

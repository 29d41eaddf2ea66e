package expand

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-generator/internal/emit"
	"index-generator/internal/parse"
)

func TestExpand_ReadOnly(t *testing.T) {
	code, err := Expand([]byte(`Grid by Cell => int: A => a`))
	require.NoError(t, err)

	want := `// Index returns the int stored in g for key.
func (g *Grid) Index(key Cell) int {
	switch {
	case key == CellA:
		return g.a
	}
	panic(fmt.Sprintf("Grid.Index: no storage for key %v", key))
}`
	assert.Equal(t, want, strings.TrimSpace(string(code)))
}

func TestExpand_Mutable(t *testing.T) {
	code, err := Expand([]byte(`Grid by Cell => mut int: pat _ => a`))
	require.NoError(t, err)

	out := string(code)
	assert.Contains(t, out, "func (g *Grid) Index(key Cell) int {\n\treturn g.a\n}")
	assert.Contains(t, out, "func (g *Grid) IndexPtr(key Cell) *int {\n\treturn &g.a\n}")
	assert.NotContains(t, out, "panic")
}

func TestExpand_Generic(t *testing.T) {
	opts := emit.DefaultOptions()
	opts.Get, opts.Ref = "At", "Ptr"
	opts.Comments = false

	code, err := Expand([]byte(`[T any] Ring by Slot => mut T: Head => head, pat _ if key >= 2 => pat cells[key-2]`),
		WithEmitOptions(opts))
	require.NoError(t, err)

	want := `func (r *Ring[T]) At(key Slot) T {
	if key == SlotHead {
		return r.head
	}
	if key >= 2 {
		return r.cells[key-2]
	}
	panic(fmt.Sprintf("Ring.At: no storage for key %v", key))
}

func (r *Ring[T]) Ptr(key Slot) *T {
	if key == SlotHead {
		return &r.head
	}
	if key >= 2 {
		return &r.cells[key-2]
	}
	panic(fmt.Sprintf("Ring.Ptr: no storage for key %v", key))
}`
	assert.Equal(t, want, strings.TrimSpace(string(code)))
}

func TestExpand_NoInlineByDefault(t *testing.T) {
	code, err := Expand([]byte(`Grid by Cell => mut int: A => a, B => b, C => c, D => d, pat _ => rest`))
	require.NoError(t, err)
	assert.NotContains(t, string(code), "go:noinline")
}

func TestExpand_BinderDoesNotShadowReceiver(t *testing.T) {
	code, err := Expand([]byte(`Struct by Key => uint8: pat s KeyArr if s < 10 => pat arr[s], pat _ => rest`))
	require.NoError(t, err)

	want := `// Index returns the uint8 stored in r for key.
func (r *Struct) Index(key Key) uint8 {
	if s, ok := key.(KeyArr); ok && s < 10 {
		return r.arr[s]
	}
	return r.rest
}`
	assert.Equal(t, want, strings.TrimSpace(string(code)))
}

func TestExpand_SyntaxError(t *testing.T) {
	code, err := Expand([]byte("Grid by Cell => int:\n\tA => a b"), WithPosition("grid.go", 7))
	require.Error(t, err)
	assert.Nil(t, code)

	var serr *parse.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 8, serr.Pos.Line)
	assert.Equal(t, "grid.go", serr.Pos.Filename)
}

func TestExpand_Logger(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Expand([]byte(`Grid by Cell => int: A => a`), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "component=parser")
	assert.Contains(t, buf.String(), "pairings=1")
}

func TestExpand_Deterministic(t *testing.T) {
	src := []byte(`Grid by Cell => mut int: A => a, pat v Far if v.ok() => pat far[v.n], pat _ => rest`)

	first, err := Expand(src)
	require.NoError(t, err)

	second, err := Expand(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

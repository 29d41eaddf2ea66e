package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-generator/internal/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_ExpandStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, "Grid by Cell => mut int:\n\tA => a,\n\tpat _ => rest,\n", "expand")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "func (g *Grid) Index(key Cell) int {")
	assert.Contains(t, stdout, "func (g *Grid) IndexPtr(key Cell) *int {")
	assert.Contains(t, stdout, "return &g.rest")
}

func TestRun_ExpandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.idx")
	require.NoError(t, os.WriteFile(path, []byte("Grid by Cell => int:\n\tA => a b\n"), 0o644))

	code, stdout, stderr := runCLI(t, "", "expand", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, path+":2:9: unexpected \"b\" after shorthand field \"a\"")
}

func TestRun_ExpandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("accessors:\n  get: At\ncomments: false\n"), 0o644))

	code, stdout, stderr := runCLI(t, "Grid by Cell => int: pat _ => a", "expand", "-config", path)
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, "func (g *Grid) At(key Cell) int {\n\treturn g.a\n}\n", stdout)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "generate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "generate"`)
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Commands:")
}

func TestRun_Init(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, "", "init", dir)
	require.Equal(t, 0, code, stderr)

	cfg, err := config.LoadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	code, _, stderr = runCLI(t, "", "init", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")

	code, _, _ = runCLI(t, "", "init", "-force", dir)
	assert.Equal(t, 0, code)
}

func TestRun_CheckExamples(t *testing.T) {
	code, _, stderr := runCLI(t, "", "check", "-pkg", "index-generator/examples/...")
	assert.Equal(t, 0, code, stderr)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-generator/internal/emit"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
output_suffix: _accessors.go
accessors:
  get: At
  ref: AtPtr
receiver: self
key_param: k
shorthand: bare
noinline_threshold: 4
comments: false
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "_accessors.go", cfg.OutputSuffix)
	assert.Equal(t, "At", cfg.Accessors.Get)
	assert.Equal(t, "AtPtr", cfg.Accessors.Ref)

	opts := cfg.EmitOptions()
	assert.Equal(t, emit.Options{
		Get:               "At",
		Ref:               "AtPtr",
		Receiver:          "self",
		KeyParam:          "k",
		Shorthand:         emit.ShorthandBare,
		NoInlineThreshold: 4,
		Comments:          false,
	}, opts)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, emit.DefaultOptions(), cfg.EmitOptions())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("accesors:\n  get: At\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accesors")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{"version", `version: "2"`, `unsupported version "2"`},
		{"suffix", `output_suffix: _index.txt`, "output_suffix"},
		{"test suffix", `output_suffix: _index_test.go`, "must not name a test file"},
		{"accessor name", "accessors:\n  get: 1st", `accessors.get "1st" is not a Go identifier`},
		{"keyword", `key_param: func`, `key_param "func" is not a Go identifier`},
		{"same accessors", "accessors:\n  get: At\n  ref: At", "are both \"At\""},
		{"receiver clash", "receiver: k\nkey_param: k", "receiver and key_param"},
		{"shorthand", `shorthand: prefix`, `(did you mean "prefixed"?)`},
		{"threshold", `noinline_threshold: -1`, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "missing file falls back to defaults")

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("key_param: k\n"), 0o644))

	cfg, err = LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.KeyParam)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("shorthand: [a"), 0o644))

	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Accessors.Get = "Get"

	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestOutputName(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "types_index.go", cfg.OutputName("types.go"))
	assert.True(t, cfg.IsOutput("types_index.go"))
	assert.False(t, cfg.IsOutput("types.go"))
}

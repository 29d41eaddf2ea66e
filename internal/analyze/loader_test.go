package analyze

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isIndexOutput(name string) bool {
	return strings.HasSuffix(name, "_index.go")
}

func TestLoader_LoadPackages(t *testing.T) {
	loader := NewLoader("", isIndexOutput, nil)

	pkgs, diags, err := loader.LoadPackages("index-generator/examples/basic")
	require.NoError(t, err)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, "basic", pkg.Name)
	assert.Equal(t, "index-generator/examples/basic", pkg.PkgPath)
	assert.Equal(t, "basic", filepath.Base(pkg.Dir))
	assert.Contains(t, pkg.Generated, "types_index.go")

	require.Len(t, pkg.Files, 1)
	assert.Equal(t, "types.go", filepath.Base(pkg.Files[0].Path))
	require.Len(t, pkg.Files[0].Directives, 1)
	assert.Contains(t, string(pkg.Files[0].Directives[0].Source), "Struct by Key => mut uint8:")
}

func TestLoader_UnknownPackage(t *testing.T) {
	loader := NewLoader("", isIndexOutput, nil)

	_, _, err := loader.LoadPackages("index-generator/does/not/exist")
	require.Error(t, err)
}

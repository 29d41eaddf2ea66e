package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-generator/internal/analyze"
	"index-generator/internal/config"
	"index-generator/internal/gen"
)

// TestExamples_UpToDate regenerates the example packages and compares the
// result with the checked-in files.
func TestExamples_UpToDate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	loader := analyze.NewLoader("", cfg.IsOutput, nil)

	pkgs, diags, err := loader.LoadPackages("index-generator/examples/...")
	require.NoError(t, err)
	require.True(t, diags.IsValid(), diags.Error())
	require.NotEmpty(t, pkgs)

	generator := gen.NewGenerator(gen.GeneratorConfig{Config: cfg}, nil)

	for _, pkg := range pkgs {
		t.Run(pkg.Name, func(t *testing.T) {
			files, diags := generator.Generate(pkg)
			require.True(t, diags.IsValid(), diags.Error())
			assert.Empty(t, diags.Warnings)
			require.NotEmpty(t, files)

			stale, err := gen.OutOfDate(files, pkg.Dir)
			require.NoError(t, err)
			assert.Empty(t, stale, "run go generate ./examples/...")
		})
	}
}

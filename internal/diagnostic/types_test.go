package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeOption, "ignored", token.Position{})
	assert.False(t, d.HasErrors())

	d.AddError(CodeSyntax, `expected "by" after target type`,
		token.Position{Filename: "types.go", Line: 12, Column: 4}, "by")
	d.AddError(CodeConfig, "invalid shorthand mode", token.Position{Filename: "indexgen.yaml"})

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		"types.go:12:4: [syntax] expected \"by\" after target type (did you mean \"by\"?)\n"+
			"indexgen.yaml: [config] invalid shorthand mode")
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"bare", Diagnostic{Message: "boom"}, "boom"},
		{"code", Diagnostic{Code: CodeFormat, Message: "boom"}, "[format] boom"},
		{
			"several suggestions",
			Diagnostic{Code: CodeOption, Message: `unknown option "rf"`, Suggestions: []string{"ref", "recv"}},
			`[option] unknown option "rf" (did you mean "ref" or "recv"?)`,
		},
		{
			"position",
			Diagnostic{Message: "boom", Pos: token.Position{Filename: "a.go", Line: 1, Column: 2}},
			"a.go:1:2: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeSyntax, "one", token.Position{})
	b.AddError(CodeSyntax, "two", token.Position{})
	b.AddInfo(CodeEmpty, "no directives", token.Position{})

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

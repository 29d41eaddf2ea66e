package emit

import (
	"bytes"
	"text/template"

	"index-generator/internal/spec"
)

// Result is the rendered output of one specification.
type Result struct {
	// Code is the accessor declarations, not yet formatted.
	Code []byte
	// Imports lists the import paths the declarations need beyond the ones
	// the invocation's own types refer to.
	Imports []string
	// Accessors is the plan the code was rendered from.
	Accessors []Accessor
}

// Emit renders the accessors of s. It is a pure function of s and opts.
func Emit(s *spec.Specification, opts Options) Result {
	accessors := Plan(s, opts)

	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, accessors); err != nil {
		// The template only reads plain fields of Accessor; an execution
		// error is a bug in this package.
		panic(err)
	}

	res := Result{Code: buf.Bytes(), Accessors: accessors}
	if accessors[0].Dispatch.Unmatched != "" {
		res.Imports = []string{"fmt"}
	}

	return res
}

var accessorTemplate = template.Must(template.New("accessors").Parse(`
{{- range .}}
{{if .Doc}}// {{.Doc}}
{{end}}{{if .NoInline}}{{if .Doc}}//
{{end}}//go:noinline
{{end}}func ({{.Receiver}} {{.RecvType}}) {{.Name}}({{.KeyParam}} {{.KeyType}}) {{.Result}} {
{{- $acc := .}}
{{- if .Dispatch.Switch}}
	switch {
{{- range .Dispatch.Arms}}
{{- if .Cases}}
	case {{range $i, $c := .Cases}}{{if $i}}, {{end}}{{$c}}{{end}}:
{{- else}}
	default:
{{- end}}
		return {{if $acc.Ref}}&{{end}}{{.Storage}}
{{- end}}
	}
{{- else}}
{{- range .Dispatch.Arms}}
{{- if .Unconditional}}
	return {{if $acc.Ref}}&{{end}}{{.Storage}}
{{- else}}
	if {{if .Init}}{{.Init}}; {{end}}{{.Cond}} {
		return {{if $acc.Ref}}&{{end}}{{.Storage}}
	}
{{- end}}
{{- end}}
{{- end}}
{{- if .Dispatch.Unmatched}}
	panic(fmt.Sprintf({{printf "%q" (print .Dispatch.Unmatched " %v")}}, {{.KeyParam}}))
{{- end}}
}
{{end}}`))

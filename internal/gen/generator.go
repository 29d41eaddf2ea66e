package gen

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"

	"index-generator/internal/analyze"
	"index-generator/internal/config"
	"index-generator/internal/diagnostic"
	"index-generator/internal/emit"
	"index-generator/internal/parse"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Config supplies output naming and the default emission options.
	Config *config.Config
	// Debug writes the unformatted code to a .unformatted.go sidecar when a
	// generated file fails to format.
	Debug bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Config: config.Default()}
}

// Generator generates accessor files for loaded packages.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
// A nil logger disables logging.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if config.Config == nil {
		config.Config = DefaultGeneratorConfig().Config
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger.With(slog.String("component", "gen"))}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "types_index.go").
	Filename string
	// Source is the base name of the file holding the directives.
	Source string
	// Content is the formatted Go source code.
	Content []byte
	// Accessors is the number of generated methods.
	Accessors int
}

// Generate generates one file per source file of pkg that has directives.
// When the returned diagnostics hold errors the files are nil.
func (g *Generator) Generate(pkg *analyze.Package) ([]GeneratedFile, diagnostic.Diagnostics) {
	var (
		diags diagnostic.Diagnostics
		files []GeneratedFile
	)

	for _, f := range pkg.Files {
		if len(f.Directives) == 0 {
			continue
		}

		file, ok := g.generateFile(pkg, f, &diags)
		if ok {
			files = append(files, *file)
		}
	}

	g.checkStale(pkg, files, &diags)

	if diags.HasErrors() {
		return nil, diags
	}

	return files, diags
}

// checkStale warns about generated files whose source lost its directives.
func (g *Generator) checkStale(pkg *analyze.Package, files []GeneratedFile, d *diagnostic.Diagnostics) {
	produced := make(map[string]bool, len(files))
	for _, f := range files {
		produced[f.Filename] = true
	}

	for _, name := range pkg.Generated {
		if produced[name] {
			continue
		}

		// A file whose directives failed is not stale, just not regenerated.
		if g.hasSource(pkg, name) {
			continue
		}

		d.AddWarning(diagnostic.CodeStale,
			"generated file has no directives left in its source; delete it",
			positionOf(filepath.Join(pkg.Dir, name)))
	}
}

func (g *Generator) hasSource(pkg *analyze.Package, output string) bool {
	for _, f := range pkg.Files {
		if g.config.Config.OutputName(filepath.Base(f.Path)) == output {
			return true
		}
	}

	return false
}

type fileData struct {
	PackageName string
	Imports     []string
	Bodies      []string
}

// generateFile generates the output file for one source file.
func (g *Generator) generateFile(pkg *analyze.Package, f *analyze.File, d *diagnostic.Diagnostics) (*GeneratedFile, bool) {
	source := filepath.Base(f.Path)
	data := &fileData{PackageName: pkg.Name}
	candidates := slices.Clone(f.Imports)
	accessors := 0
	ok := true

	for _, dir := range f.Directives {
		opts, optsOK := applyOptions(g.config.Config.EmitOptions(), dir.Options, d)
		if !optsOK {
			ok = false
			continue
		}

		s, err := parse.Parse(dir.Source,
			parse.WithFilename(dir.Pos.Filename),
			parse.WithLine(dir.Line),
			parse.WithLogger(g.logger))
		if err != nil {
			addParseError(d, err, dir)

			ok = false

			continue
		}

		res := emit.Emit(s, opts)

		data.Bodies = append(data.Bodies, string(res.Code))
		accessors += len(res.Accessors)

		for _, path := range res.Imports {
			candidates = append(candidates, analyze.Import{Path: path})
		}
	}

	if !ok {
		return nil, false
	}

	for _, imp := range sortImports(candidates) {
		data.Imports = append(data.Imports, imp.String())
	}

	filename := g.config.Config.OutputName(source)
	path := filepath.Join(pkg.Dir, filename)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		d.AddError(diagnostic.CodeFormat, fmt.Sprintf("executing template: %v", err), positionOf(path))
		return nil, false
	}

	formatted, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		if g.config.Debug {
			_ = writeDebugUnformatted(pkg.Dir, filename, buf.Bytes())
		}

		d.AddError(diagnostic.CodeFormat, fmt.Sprintf("formatting code: %v", err), positionOf(path))

		return nil, false
	}

	g.logger.Debug("generated file",
		slog.String("file", filename),
		slog.Int("directives", len(f.Directives)),
		slog.Int("accessors", accessors))

	return &GeneratedFile{
		Filename:  filename,
		Source:    source,
		Content:   formatted,
		Accessors: accessors,
	}, true
}

func positionOf(path string) token.Position {
	return token.Position{Filename: path}
}

func addParseError(d *diagnostic.Diagnostics, err error, dir analyze.Directive) {
	var serr *parse.SyntaxError
	if !errors.As(err, &serr) {
		d.AddError(diagnostic.CodeSyntax, err.Error(), dir.Pos)
		return
	}

	var suggestions []string
	if serr.Suggestion != "" {
		suggestions = append(suggestions, serr.Suggestion)
	}

	d.AddError(diagnostic.CodeSyntax, serr.Msg, serr.Pos, suggestions...)
}

// sortImports orders candidates by path and drops exact duplicates.
func sortImports(candidates []analyze.Import) []analyze.Import {
	out := slices.Clone(candidates)

	slices.SortFunc(out, func(a, b analyze.Import) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Name, b.Name))
	})

	return slices.Compact(out)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by index-generator. DO NOT EDIT.

package {{.PackageName}}
{{if eq (len .Imports) 1}}
import {{index .Imports 0}}
{{else if .Imports}}
import (
{{range .Imports}}	{{.}}
{{end}})
{{end}}
{{range .Bodies}}{{.}}{{end}}`))

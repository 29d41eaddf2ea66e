package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"path/filepath"
	"strconv"

	"golang.org/x/tools/go/packages"

	"index-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Loader loads Go packages and extracts their index directives.
type Loader struct {
	dir      string
	logger   *slog.Logger
	isOutput func(name string) bool
}

// NewLoader creates a Loader resolving patterns relative to dir. isOutput
// reports whether a file base name is a generated file; those files are not
// scanned. A nil logger disables logging.
func NewLoader(dir string, isOutput func(name string) bool, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if isOutput == nil {
		isOutput = func(string) bool { return false }
	}

	return &Loader{
		dir:      dir,
		logger:   logger.With(slog.String("component", "analyze")),
		isOutput: isOutput,
	}
}

// LoadPackages loads the packages matching patterns (e.g. ".", "./...",
// "index-generator/examples/basic") and extracts their directives.
// Malformed directives are reported in the returned diagnostics; the error
// is reserved for packages that cannot be loaded at all.
func (l *Loader) LoadPackages(patterns ...string) ([]*Package, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.dir,
		Fset: fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, diags, fmt.Errorf("package errors: %v", errs)
	}

	out := make([]*Package, 0, len(pkgs))

	for _, pkg := range pkgs {
		p := l.processPackage(fset, pkg, &diags)

		l.logger.Debug("loaded package",
			slog.String("pkg", pkg.PkgPath),
			slog.Int("files", len(p.Files)),
			slog.Int("generated", len(p.Generated)))

		out = append(out, p)
	}

	return out, diags, nil
}

// processPackage extracts directives from a loaded package.
func (l *Loader) processPackage(fset *token.FileSet, pkg *packages.Package, d *diagnostic.Diagnostics) *Package {
	p := &Package{
		Name:    pkg.Name,
		PkgPath: pkg.PkgPath,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, syntax := range pkg.Syntax {
		path := fset.Position(syntax.Package).Filename

		if l.isOutput(filepath.Base(path)) {
			p.Generated = append(p.Generated, filepath.Base(path))
			continue
		}

		f := ParseFile(fset, path, syntax, d)
		if len(f.Directives) == 0 {
			continue
		}

		l.logger.Debug("found directives", slog.String("file", path), slog.Int("count", len(f.Directives)))

		p.Files = append(p.Files, f)
	}

	return p
}

// ParseFile builds a File from a file parsed with go/parser.ParseComments.
func ParseFile(fset *token.FileSet, path string, syntax *ast.File, d *diagnostic.Diagnostics) *File {
	f := &File{
		Path:       path,
		Directives: Extract(fset, syntax, d),
	}

	for _, spec := range syntax.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := Import{Path: importPath}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		// Blank imports only matter for their side effects and dot imports
		// cannot be pruned when unused.
		if imp.Name == "_" || imp.Name == "." {
			continue
		}

		f.Imports = append(f.Imports, imp)
	}

	return f
}

// Package main provides the CLI entrypoint for index-generator.
//
// index-generator reads //indexgen:index directives from Go packages and
// writes the Index/IndexPtr accessors they describe:
//
//	//go:generate go run index-generator/cmd/index-generator gen -file $GOFILE
//
//	//indexgen:index
//	// Struct by Key => mut uint8:
//	//	A => a,
//	//	pat _ => rest,
//
// Commands: gen (default) | check | expand | repl | init
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"index-generator/expand"
	"index-generator/internal/analyze"
	"index-generator/internal/config"
	"index-generator/internal/diagnostic"
	"index-generator/internal/gen"
)

const appName = "index-generator"

const usageText = `usage: index-generator <command> [flags]

Commands:
  gen      generate accessor files (default)
  check    report generated files that are missing or out of date
  expand   expand one invocation from a file or stdin
  repl     expand invocations interactively
  init     write a default ` + config.FileName + `

Run "index-generator <command> -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := "gen"
	if len(args) > 0 && (args[0] == "" || args[0][0] != '-') {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "gen":
		return cmdGen(args, stderr, false)
	case "check":
		return cmdGen(args, stderr, true)
	case "expand":
		return cmdExpand(args, stdin, stdout, stderr)
	case "repl":
		return cmdRepl(args, stdout, stderr)
	case "init":
		return cmdInit(args, stderr)
	case "help":
		fmt.Fprint(stdout, usageText)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n\n%s", appName, cmd, usageText)
		return 2
	}
}

// newLogger returns a text logger on w without timestamps.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}

			return a
		},
	}))
}

// loadConfig loads path, or the configuration file of the working directory
// when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	return config.LoadDir(".")
}

func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		fmt.Fprintln(w, e.String())
	}

	for _, e := range d.Warnings {
		fmt.Fprintln(w, "warning: "+e.String())
	}
}

// -----------------------------------------------------------------------------
// gen / check
// -----------------------------------------------------------------------------

func cmdGen(args []string, stderr io.Writer, check bool) int {
	name := "gen"
	if check {
		name = "check"
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	pattern := fs.String("pkg", ".", "package pattern to process")
	file := fs.String("file", os.Getenv("GOFILE"), "only write the output of this source file (defaults to $GOFILE)")
	configPath := fs.String("config", "", "configuration file (default: "+config.FileName+" in the working directory)")
	debug := fs.Bool("debug", false, "write .unformatted.go sidecars when formatting fails")
	verbose := fs.Bool("v", false, "verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", slog.String("error", err.Error()))
		return 1
	}

	loader := analyze.NewLoader("", cfg.IsOutput, logger)

	pkgs, diags, err := loader.LoadPackages(*pattern)
	if err != nil {
		logger.Error("loading packages", slog.String("error", err.Error()))
		return 1
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{Config: cfg, Debug: *debug}, logger)

	type output struct {
		dir   string
		files []gen.GeneratedFile
	}

	var outputs []output

	for _, pkg := range pkgs {
		files, d := generator.Generate(pkg)
		diags.Merge(d)

		if *file != "" {
			files = onlySource(files, filepath.Base(*file))
		}

		outputs = append(outputs, output{dir: pkg.Dir, files: files})
	}

	printDiagnostics(stderr, diags)

	if diags.HasErrors() {
		return 1
	}

	status := 0

	for _, out := range outputs {
		if check {
			stale, err := gen.OutOfDate(out.files, out.dir)
			if err != nil {
				logger.Error("checking files", slog.String("error", err.Error()))
				return 1
			}

			for _, name := range stale {
				fmt.Fprintf(stderr, "%s: out of date\n", filepath.Join(out.dir, name))

				status = 1
			}

			continue
		}

		if err := gen.WriteFiles(out.files, out.dir); err != nil {
			logger.Error("writing files", slog.String("error", err.Error()))
			return 1
		}

		for _, f := range out.files {
			logger.Debug("wrote file", slog.String("file", filepath.Join(out.dir, f.Filename)), slog.Int("accessors", f.Accessors))
		}
	}

	return status
}

func onlySource(files []gen.GeneratedFile, source string) []gen.GeneratedFile {
	var out []gen.GeneratedFile

	for _, f := range files {
		if f.Source == source {
			out = append(out, f)
		}
	}

	return out
}

// -----------------------------------------------------------------------------
// expand
// -----------------------------------------------------------------------------

func cmdExpand(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "configuration file (default: "+config.FileName+" in the working directory)")
	verbose := fs.Bool("v", false, "verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", slog.String("error", err.Error()))
		return 1
	}

	filename := "<stdin>"
	if fs.NArg() > 0 {
		filename = fs.Arg(0)
	}

	src, err := readInput(filename, stdin)
	if err != nil {
		logger.Error("reading input", slog.String("error", err.Error()))
		return 1
	}

	code, err := expand.Expand(src,
		expand.WithEmitOptions(cfg.EmitOptions()),
		expand.WithPosition(filename, 1),
		expand.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprint(stdout, string(code))

	return 0
}

func readInput(filename string, stdin io.Reader) ([]byte, error) {
	if filename == "<stdin>" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(filename)
}

// -----------------------------------------------------------------------------
// init
// -----------------------------------------------------------------------------

func cmdInit(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	force := fs.Bool("force", false, "overwrite an existing "+config.FileName)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := config.FileName
	if fs.NArg() > 0 {
		path = filepath.Join(fs.Arg(0), config.FileName)
	}

	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(stderr, "%s already exists; use -force to overwrite\n", path)
		return 1
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

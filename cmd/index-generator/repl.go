package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"index-generator/expand"
	"index-generator/internal/emit"
	"index-generator/internal/parse"
)

const (
	historyFile = ".indexgen_history"
	promptMain  = "==> "
	promptCont  = "... "
)

const replBanner = `index-generator REPL
Type an invocation; it is expanded as soon as it parses. A blank line
submits an incomplete one. Ctrl+D exits. Type :quit to exit.`

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "configuration file")
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

	fmt.Fprintln(stdout, replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &repl{opts: cfg.EmitOptions(), logger: logger, stdout: stdout, stderr: stderr}

	for {
		src, ok := r.read(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}

		trimmed := strings.TrimSpace(src)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if strings.ToLower(trimmed) == ":quit" {
				return 0
			}

			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")

			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		r.expand(src)
	}
}

type repl struct {
	opts   emit.Options
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// read buffers lines until the invocation parses without a trailing comma,
// fails before the end of its text, or a blank line is entered.
func (r *repl) read(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}

		if err != nil {
			// Ctrl+C drops the buffered input.
			return "", true
		}

		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)

		if strings.HasPrefix(trimmed, ":") {
			return src, true
		}

		// A trailing comma announces another pairing.
		if strings.HasSuffix(trimmed, ",") {
			continue
		}

		if _, err := parse.Parse([]byte(src)); !parse.IsIncomplete(err) {
			return src, true
		}
	}
}

func (r *repl) expand(src string) {
	code, err := expand.Expand([]byte(src),
		expand.WithEmitOptions(r.opts),
		expand.WithPosition("<repl>", 1),
		expand.WithLogger(r.logger))
	if err != nil {
		fmt.Fprintln(r.stderr, err)
		return
	}

	fmt.Fprint(r.stdout, string(code))
}

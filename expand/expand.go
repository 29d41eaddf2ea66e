// Package expand is the public entry point of the generator: it turns the
// text of one index invocation into formatted Go accessor declarations.
//
//	src := []byte(`Grid by Cell => mut int: A => a, pat _ => rest`)
//	code, err := expand.Expand(src)
package expand

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"

	"index-generator/internal/emit"
	"index-generator/internal/parse"
)

// Option configures Expand.
type Option func(*config)

type config struct {
	emit     emit.Options
	filename string
	line     int
	logger   *slog.Logger
}

// WithEmitOptions replaces the default emission options.
func WithEmitOptions(opts emit.Options) Option {
	return func(c *config) { c.emit = opts }
}

// WithPosition sets the file name and line reported in syntax errors.
func WithPosition(filename string, line int) Option {
	return func(c *config) {
		c.filename = filename
		c.line = line
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Expand parses src and returns the formatted accessor declarations, one
// blank line apart.
// A malformed invocation yields a *parse.SyntaxError and no code.
func Expand(src []byte, opts ...Option) ([]byte, error) {
	cfg := config{emit: emit.DefaultOptions(), filename: "<input>", line: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := parse.Parse(src,
		parse.WithFilename(cfg.filename),
		parse.WithLine(cfg.line),
		parse.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	res := emit.Emit(s, cfg.emit)

	formatted, err := format.Source(res.Code)
	if err != nil {
		return res.Code, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return bytes.TrimLeft(formatted, "\n"), nil
}

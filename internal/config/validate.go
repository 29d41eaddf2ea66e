package config

import (
	"fmt"
	"go/token"
	"strings"

	"index-generator/internal/diagnostic"
	"index-generator/internal/emit"
	"index-generator/internal/suggest"
)

// SupportedVersion is the only configuration schema version.
const SupportedVersion = "1"

// Validate checks the configuration and returns every problem as one error.
func (c *Config) Validate() error {
	var d diagnostic.Diagnostics

	c.validate(&d)

	return d.Error()
}

func (c *Config) validate(d *diagnostic.Diagnostics) {
	pos := token.Position{Filename: FileName}

	if c.Version != SupportedVersion {
		d.AddError(diagnostic.CodeConfig,
			fmt.Sprintf("unsupported version %q, expected %q", c.Version, SupportedVersion), pos)
	}

	if !strings.HasSuffix(c.OutputSuffix, ".go") || strings.HasSuffix(c.OutputSuffix, "_test.go") {
		d.AddError(diagnostic.CodeConfig,
			fmt.Sprintf("output_suffix %q must end in .go and must not name a test file", c.OutputSuffix), pos)
	}

	for _, f := range []struct{ key, value string }{
		{"accessors.get", c.Accessors.Get},
		{"accessors.ref", c.Accessors.Ref},
		{"key_param", c.KeyParam},
	} {
		if !token.IsIdentifier(f.value) {
			d.AddError(diagnostic.CodeConfig, fmt.Sprintf("%s %q is not a Go identifier", f.key, f.value), pos)
		}
	}

	if c.Accessors.Get == c.Accessors.Ref {
		d.AddError(diagnostic.CodeConfig,
			fmt.Sprintf("accessors.get and accessors.ref are both %q", c.Accessors.Get), pos)
	}

	if c.Receiver != "" && !token.IsIdentifier(c.Receiver) {
		d.AddError(diagnostic.CodeConfig, fmt.Sprintf("receiver %q is not a Go identifier", c.Receiver), pos)
	}

	if c.Receiver != "" && c.Receiver == c.KeyParam {
		d.AddError(diagnostic.CodeConfig,
			fmt.Sprintf("receiver and key_param are both %q", c.Receiver), pos)
	}

	if _, err := emit.ParseShorthandMode(c.Shorthand); err != nil {
		var suggestions []string
		if s := suggest.Closest(c.Shorthand, emit.ShorthandModes); s != "" {
			suggestions = append(suggestions, s)
		}

		d.AddError(diagnostic.CodeConfig, "shorthand: "+err.Error(), pos, suggestions...)
	}

	if c.NoInlineThreshold != nil && *c.NoInlineThreshold < 0 {
		d.AddError(diagnostic.CodeConfig,
			fmt.Sprintf("noinline_threshold must not be negative, got %d", *c.NoInlineThreshold), pos)
	}
}

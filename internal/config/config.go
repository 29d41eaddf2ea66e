package config

import (
	"strings"

	"index-generator/internal/emit"
)

// FileName is the configuration file looked up in a package directory.
const FileName = "indexgen.yaml"

// DefaultOutputSuffix is appended to a source file's base name to name its
// generated file.
const DefaultOutputSuffix = "_index.go"

// Config is the root of indexgen.yaml.
type Config struct {
	// Version of the configuration schema.
	Version string `yaml:"version"`
	// OutputSuffix names generated files: types.go -> types<suffix>.
	OutputSuffix string `yaml:"output_suffix,omitempty"`
	// Accessors names the generated methods.
	Accessors Accessors `yaml:"accessors,omitempty"`
	// Receiver is the receiver name; derived from the target type when empty.
	Receiver string `yaml:"receiver,omitempty"`
	// KeyParam is the name of the key parameter.
	KeyParam string `yaml:"key_param,omitempty"`
	// Shorthand is the shorthand key expansion: prefixed or bare.
	Shorthand string `yaml:"shorthand,omitempty"`
	// NoInlineThreshold is the pairing count from which accessors are
	// marked //go:noinline; 0, the default, never marks them.
	NoInlineThreshold *int `yaml:"noinline_threshold,omitempty"`
	// Comments enables doc comments on generated accessors.
	Comments *bool `yaml:"comments,omitempty"`
}

// Accessors holds the generated method names.
type Accessors struct {
	Get string `yaml:"get,omitempty"`
	Ref string `yaml:"ref,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// EmitOptions converts the configuration into emission options.
func (c *Config) EmitOptions() emit.Options {
	opts := emit.DefaultOptions()
	opts.Get = c.Accessors.Get
	opts.Ref = c.Accessors.Ref
	opts.Receiver = c.Receiver
	opts.KeyParam = c.KeyParam

	if mode, err := emit.ParseShorthandMode(c.Shorthand); err == nil {
		opts.Shorthand = mode
	}

	if c.NoInlineThreshold != nil {
		opts.NoInlineThreshold = *c.NoInlineThreshold
	}

	if c.Comments != nil {
		opts.Comments = *c.Comments
	}

	return opts
}

// OutputName returns the generated file name for a source file name.
func (c *Config) OutputName(source string) string {
	return strings.TrimSuffix(source, ".go") + c.OutputSuffix
}

// IsOutput reports whether name is a generated file.
func (c *Config) IsOutput(name string) bool {
	return strings.HasSuffix(name, c.OutputSuffix)
}

// Package config loads the generator configuration from indexgen.yaml.
//
// Example:
//
//	version: "1"
//	output_suffix: _index.go
//	accessors:
//	  get: Index
//	  ref: IndexPtr
//	key_param: key
//	shorthand: prefixed
//	noinline_threshold: 0
//	comments: true
//
// Every key is optional. Unknown keys are rejected so a misspelled key does
// not silently fall back to its default.
package config

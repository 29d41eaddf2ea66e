package emit

import (
	"fmt"
	"strings"
)

// ShorthandMode controls how a shorthand key identifier is expanded.
type ShorthandMode string

const (
	// ShorthandPrefixed expands `A` to the key type name followed by A,
	// e.g. KeyA for key type Key or pkg.KeyA for pkg.Key.
	ShorthandPrefixed ShorthandMode = "prefixed"
	// ShorthandBare expands `A` to A.
	ShorthandBare ShorthandMode = "bare"
)

// ShorthandModes lists the valid modes.
var ShorthandModes = []string{string(ShorthandPrefixed), string(ShorthandBare)}

// ParseShorthandMode parses a mode name.
func ParseShorthandMode(s string) (ShorthandMode, error) {
	switch m := ShorthandMode(strings.ToLower(s)); m {
	case ShorthandPrefixed, ShorthandBare:
		return m, nil
	default:
		return "", fmt.Errorf("unknown shorthand mode %q", s)
	}
}

// Options holds configuration for emission.
type Options struct {
	// Get is the read accessor name.
	Get string
	// Ref is the pointer accessor name.
	Ref string
	// Receiver is the receiver name; derived from the target type when empty.
	Receiver string
	// KeyParam is the name of the key parameter.
	KeyParam string
	// Shorthand selects the shorthand key expansion.
	Shorthand ShorthandMode
	// NoInlineThreshold marks accessors with at least this many pairings
	// //go:noinline. Zero, the default, leaves inlining to the compiler.
	NoInlineThreshold int
	// Comments enables doc comments on the accessors.
	Comments bool
}

// DefaultOptions returns the default emission options.
func DefaultOptions() Options {
	return Options{
		Get:       "Index",
		Ref:       "IndexPtr",
		KeyParam:  "key",
		Shorthand: ShorthandPrefixed,
		Comments:  true,
	}
}

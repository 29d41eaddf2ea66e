package gen

import (
	"fmt"
	"go/token"
	"strconv"

	"index-generator/internal/analyze"
	"index-generator/internal/diagnostic"
	"index-generator/internal/emit"
	"index-generator/internal/suggest"
)

// Directive option keys.
const (
	optGet       = "get"
	optRef       = "ref"
	optRecv      = "recv"
	optShorthand = "shorthand"
	optNoInline  = "noinline"
)

var optionKeys = []string{optGet, optRef, optRecv, optShorthand, optNoInline}

// applyOptions overrides base with the options of one directive. Problems
// are reported in d; ok is false when any option was rejected.
func applyOptions(base emit.Options, opts []analyze.Option, d *diagnostic.Diagnostics) (emit.Options, bool) {
	out := base
	ok := true

	fail := func(o analyze.Option, msg string, suggestions ...string) {
		d.AddError(diagnostic.CodeOption, msg, o.Pos, suggestions...)
		ok = false
	}

	for _, o := range opts {
		switch o.Key {
		case optGet, optRef, optRecv:
			if !token.IsIdentifier(o.Value) {
				fail(o, fmt.Sprintf("%s=%q is not a Go identifier", o.Key, o.Value))
				continue
			}

			switch o.Key {
			case optGet:
				out.Get = o.Value
			case optRef:
				out.Ref = o.Value
			default:
				out.Receiver = o.Value
			}
		case optShorthand:
			mode, err := emit.ParseShorthandMode(o.Value)
			if err != nil {
				var suggestions []string
				if s := suggest.Closest(o.Value, emit.ShorthandModes); s != "" {
					suggestions = append(suggestions, s)
				}

				fail(o, err.Error(), suggestions...)

				continue
			}

			out.Shorthand = mode
		case optNoInline:
			n, err := strconv.Atoi(o.Value)
			if err != nil || n < 0 {
				fail(o, fmt.Sprintf("noinline=%q is not a non-negative pairing count", o.Value))
				continue
			}

			out.NoInlineThreshold = n
		default:
			var suggestions []string
			if s := suggest.Closest(o.Key, optionKeys); s != "" {
				suggestions = append(suggestions, s)
			}

			fail(o, fmt.Sprintf("unknown option %q", o.Key), suggestions...)
		}
	}

	if !ok || len(opts) == 0 {
		return out, ok
	}

	switch at := opts[0].Pos; {
	case out.Get == out.Ref:
		d.AddError(diagnostic.CodeOption, fmt.Sprintf("read and pointer accessors are both named %q", out.Get), at)
		ok = false
	case out.Receiver != "" && out.Receiver == out.KeyParam:
		d.AddError(diagnostic.CodeOption, fmt.Sprintf("receiver and key parameter are both named %q", out.Receiver), at)
		ok = false
	}

	return out, ok
}

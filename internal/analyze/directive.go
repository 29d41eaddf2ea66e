package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"index-generator/internal/diagnostic"
	"index-generator/internal/suggest"
)

const (
	// DirectivePrefix starts every generator directive.
	DirectivePrefix = "//indexgen:"
	// Marker is the directive introducing an invocation.
	Marker = DirectivePrefix + "index"
)

var verbs = []string{"index"}

// Extract returns the directives of a parsed file. The file must have been
// parsed with comments. Malformed directives are reported in d and skipped.
func Extract(fset *token.FileSet, file *ast.File, d *diagnostic.Diagnostics) []Directive {
	var out []Directive

	for _, group := range file.Comments {
		first := group.List[0]
		if !strings.HasPrefix(first.Text, DirectivePrefix) {
			continue
		}

		pos := fset.Position(first.Slash)

		verb, rest := splitVerb(strings.TrimPrefix(first.Text, DirectivePrefix))
		if verb != "index" {
			var suggestions []string
			if s := suggest.Closest(verb, verbs); s != "" {
				suggestions = append(suggestions, s)
			}

			d.AddError(diagnostic.CodeOption, fmt.Sprintf("unknown directive %q", DirectivePrefix+verb), pos, suggestions...)

			continue
		}

		opts, ok := parseOptions(fset, first, rest, d)
		if !ok {
			continue
		}

		src, line := invocation(fset, group.List[1:])
		if line == 0 {
			d.AddError(diagnostic.CodeEmpty, "directive has no invocation; continue the comment on the next lines", pos)
			continue
		}

		out = append(out, Directive{Pos: pos, Options: opts, Source: src, Line: line})
	}

	return out
}

func splitVerb(s string) (string, string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}

	return s, ""
}

// parseOptions splits the text after the marker into key=value pairs.
func parseOptions(fset *token.FileSet, c *ast.Comment, rest string, d *diagnostic.Diagnostics) ([]Option, bool) {
	var opts []Option

	ok := true
	offset := len(Marker)

	for _, field := range strings.Fields(rest) {
		idx := strings.Index(c.Text[offset:], field) + offset
		offset = idx + len(field)

		pos := fset.Position(c.Slash + token.Pos(idx))

		key, value, found := strings.Cut(field, "=")
		if !found || key == "" || value == "" {
			d.AddError(diagnostic.CodeOption, fmt.Sprintf("malformed option %q, expected key=value", field), pos)

			ok = false

			continue
		}

		opts = append(opts, Option{Key: key, Value: value, Pos: pos})
	}

	return opts, ok
}

// invocation joins the line comments of a group into one source text, with
// every comment at its original line and column. A block comment ends the
// invocation.
func invocation(fset *token.FileSet, list []*ast.Comment) ([]byte, int) {
	var sb strings.Builder

	first, line := 0, 0

	for _, c := range list {
		if !strings.HasPrefix(c.Text, "//") {
			break
		}

		p := fset.Position(c.Slash)
		if first == 0 {
			first = p.Line
		} else {
			for ; line < p.Line; line++ {
				sb.WriteByte('\n')
			}
		}

		line = p.Line
		sb.WriteString(strings.Repeat(" ", p.Column-1))
		sb.WriteString("  ")
		sb.WriteString(c.Text[2:])
	}

	if strings.TrimSpace(sb.String()) == "" {
		return nil, 0
	}

	return []byte(sb.String()), first
}

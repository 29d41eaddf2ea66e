package parse

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrSyntax is matched by every *SyntaxError via errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is the single positioned diagnostic a failed parse produces.
type SyntaxError struct {
	Pos token.Position
	Msg string
	// Suggestion is a replacement word for a likely typo, if one was found.
	Suggestion string
	// Incomplete marks an error found at the end of the input, where more
	// text could still complete the invocation.
	Incomplete bool
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, e.Suggestion)
	}

	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}

	return msg
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// IsIncomplete reports whether err is a syntax error at the end of the input.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Incomplete
}

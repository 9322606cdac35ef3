package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/knitchart/internal/lexer"
)

// ErrRepeatWithoutCastOn is reported when a repeat group appears in a
// pattern that never states its cast-on count. Implicit repeats are solved
// against a known stitch budget, so such a pattern cannot be charted.
var ErrRepeatWithoutCastOn = errors.New("cannot parse repeat without a cast-on count")

// Error describes a grammar violation: the token that was found and the
// alternatives that would have been accepted in its place.
type Error struct {
	Found    lexer.Token
	Expected []string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error at %s: %v", e.Found.Pos, e.Err)
	}
	return fmt.Sprintf("parse error at %s: found %s, expected one of: %s",
		e.Found.Pos, e.Found, strings.Join(e.Expected, ", "))
}

// Unwrap exposes the sentinel cause, if any, to errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == "\n" {
			out[i] = `"\n"`
			continue
		}
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}

func kindNames(kinds []lexer.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

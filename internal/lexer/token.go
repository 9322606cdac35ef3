package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	EOI Kind = iota
	Word
	Number
	Comma
	Asterisk
	Colon
	Semicolon
	Period
	OpenGroup
	CloseGroup
	Newline
	Stitch
)

// String returns the upper-case name of the kind, as used in error messages.
func (k Kind) String() string {
	switch k {
	case EOI:
		return "EOI"
	case Word:
		return "WORD"
	case Number:
		return "NUMBER"
	case Comma:
		return "COMMA"
	case Asterisk:
		return "ASTERISK"
	case Colon:
		return "COLON"
	case Semicolon:
		return "SEMICOLON"
	case Period:
		return "PERIOD"
	case OpenGroup:
		return "OPEN_GROUP"
	case CloseGroup:
		return "CLOSE_GROUP"
	case Newline:
		return "NEWLINE"
	case Stitch:
		return "STITCH"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position is a 1-based line/column location in the input text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Word values are lower-cased; every other
// kind keeps the input text verbatim.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

// Is reports whether the token has the given kind and value.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

func (t Token) String() string {
	if t.Kind == EOI {
		return "end of input"
	}
	if t.Kind == Newline {
		return `"\n"`
	}
	return fmt.Sprintf("%q", t.Value)
}

// Package lexer turns knitting-pattern text into tokens in two passes.
//
// Scan splits the text into primitive tokens (words, numbers, punctuation and
// newlines). Combine then merges runs of primitives into STITCH tokens so the
// parser can treat a stitch name such as "k2tog" as one terminal:
//
//	stitch = word                    ; word in the stitch vocabulary
//	       | prefix number suffix    ; e.g. "k" "2" "tog"
//
// Keeping the character scanner ignorant of stitch names means new compound
// stitches only need a vocabulary change here, never a scanner change.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Error is returned by Scan when the text contains a character that belongs
// to no token class.
type Error struct {
	Char rune
	Pos  Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexing error: found unknown character %q at %s", e.Char, e.Pos)
}

// primitives is the rule table for the scan pass. Rules are tried in order,
// so "\r\n" is a newline before "\r" can be taken as whitespace.
var primitives = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
	{Name: "Word", Pattern: `\p{L}+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Symbol", Pattern: `[,*:;.()\[\]]`},
})

var symbolKinds = map[string]Kind{
	",": Comma,
	"*": Asterisk,
	":": Colon,
	";": Semicolon,
	".": Period,
	"(": OpenGroup,
	"[": OpenGroup,
	")": CloseGroup,
	"]": CloseGroup,
}

// Scan reads the whole text and returns its primitive tokens, terminated by
// a single EOI token.
func Scan(text string) ([]Token, error) {
	lex, err := primitives.LexString("", text)
	if err != nil {
		return nil, fmt.Errorf("lexing error: %w", err)
	}

	symbols := primitives.Symbols()
	var (
		newlineType = symbols["Newline"]
		spaceType   = symbols["Whitespace"]
		wordType    = symbols["Word"]
		numberType  = symbols["Number"]
		symbolType  = symbols["Symbol"]
	)

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, unknownCharError(text, err)
		}

		pos := Position{Offset: tok.Pos.Offset, Line: tok.Pos.Line, Column: tok.Pos.Column}
		if tok.EOF() {
			tokens = append(tokens, Token{Kind: EOI, Pos: pos})
			return tokens, nil
		}

		switch tok.Type {
		case spaceType:
			continue
		case newlineType:
			tokens = append(tokens, Token{Kind: Newline, Value: "\n", Pos: pos})
		case wordType:
			tokens = append(tokens, Token{Kind: Word, Value: strings.ToLower(tok.Value), Pos: pos})
		case numberType:
			tokens = append(tokens, Token{Kind: Number, Value: tok.Value, Pos: pos})
		case symbolType:
			tokens = append(tokens, Token{Kind: symbolKinds[tok.Value], Value: tok.Value, Pos: pos})
		default:
			return nil, fmt.Errorf("lexing error: unexpected token type %d for %q", tok.Type, tok.Value)
		}
	}
}

// unknownCharError converts the rule lexer's no-match error into an *Error
// naming the offending character.
func unknownCharError(text string, err error) error {
	var lexErr *plexer.Error
	if !errors.As(err, &lexErr) {
		return fmt.Errorf("lexing error: %w", err)
	}
	pos := lexErr.Pos
	r := utf8.RuneError
	if pos.Offset >= 0 && pos.Offset < len(text) {
		r, _ = utf8.DecodeRuneInString(text[pos.Offset:])
	}
	return &Error{Char: r, Pos: Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}}
}

// Tokenize is Combine applied to the result of Scan.
func Tokenize(text string) ([]Token, error) {
	primitive, err := Scan(text)
	if err != nil {
		return nil, err
	}
	return Combine(primitive), nil
}

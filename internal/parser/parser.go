// Package parser builds an ast.PartNode from knitting-pattern text.
//
// It is a predictive recursive-descent parser with one token of lookahead.
// Every alternative in the grammar starts with a distinct token, so no
// backtracking is needed:
//
//	start           = pattern EOI ;
//	pattern         = [ cast_on NEWLINE ] ( stitch_sequence | row { NEWLINE row } ) ;
//	cast_on         = ( "cast" "on" | "caston" | "co" ) NUMBER ( "stitches" | "sts" | "st" ) ;
//	row             = "row" NUMBER ":" stitch_sequence [ "." ] ;
//	stitch_sequence = element { "," element } ;
//	element         = repeat | stitch ;
//	repeat          = ( "*" stitch_sequence "*" | "(" stitch_sequence ")" | "[" stitch_sequence "]" ) [ multiplier ] ;
//	multiplier      = ";" "repeat" [ "from" "*" "to" "*" ] NUMBER "times"
//	                | "x" NUMBER
//	                | NUMBER "times" ;
//	stitch          = STITCH [ NUMBER ] ;
//
// Blank lines between and after rows are ignored.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/specialistvlad/knitchart/internal/ast"
	"github.com/specialistvlad/knitchart/internal/lexer"
	"github.com/specialistvlad/knitchart/internal/stitch"
)

var (
	castOnWords  = []string{"cast", "caston", "co"}
	castOnUnits  = []string{"stitches", "sts", "st"}
	closeBracket = map[string]string{"(": ")", "[": "]"}
)

// Parser holds the token stream and the cursor into it.
type Parser struct {
	tokens []lexer.Token
	pos    int
	cur    lexer.Token

	castOnKnown bool
}

// New tokenizes the text and positions the parser on the first token.
func New(text string) (*Parser, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return newFromTokens(tokens), nil
}

func newFromTokens(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOI {
		tokens = append(tokens, lexer.Token{Kind: lexer.EOI})
	}
	p := &Parser{tokens: tokens}
	p.cur = tokens[0]
	return p
}

// Parse is a convenience wrapper around New and Start.
func Parse(text string) (*ast.PartNode, error) {
	p, err := New(text)
	if err != nil {
		return nil, err
	}
	return p.Start()
}

// advance moves to the next token. The cursor never moves past EOI.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.cur = p.tokens[p.pos]
}

// checkValue reports whether the current token has one of the values.
func (p *Parser) checkValue(values ...string) bool {
	if p.cur.Kind == lexer.EOI {
		return false
	}
	for _, v := range values {
		if p.cur.Value == v {
			return true
		}
	}
	return false
}

// checkKind reports whether the current token has one of the kinds.
func (p *Parser) checkKind(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// isValue consumes the current token if it has one of the values.
func (p *Parser) isValue(values ...string) bool {
	if p.checkValue(values...) {
		p.advance()
		return true
	}
	return false
}

// expectValue consumes and returns the current token if it has one of the
// values, and fails otherwise.
func (p *Parser) expectValue(values ...string) (lexer.Token, error) {
	if !p.checkValue(values...) {
		return lexer.Token{}, &Error{Found: p.cur, Expected: quoteAll(values)}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// expectKind consumes and returns the current token if it has one of the
// kinds, and fails otherwise.
func (p *Parser) expectKind(kinds ...lexer.Kind) (lexer.Token, error) {
	if !p.checkKind(kinds...) {
		return lexer.Token{}, &Error{Found: p.cur, Expected: kindNames(kinds)}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// expectSeries consumes one token per value, in order, and returns the token
// that follows the series.
func (p *Parser) expectSeries(values ...string) (lexer.Token, error) {
	for _, v := range values {
		if _, err := p.expectValue(v); err != nil {
			return lexer.Token{}, err
		}
	}
	return p.cur, nil
}

// expectNumber consumes a NUMBER token and returns its value, which must be
// no smaller than least and no larger than stitch.MaxStitches.
func (p *Parser) expectNumber(least int) (int, error) {
	tok, err := p.expectKind(lexer.Number)
	if err != nil {
		return 0, err
	}
	tooLarge := &Error{Found: tok, Expected: []string{fmt.Sprintf("a number <= %d", stitch.MaxStitches)}}
	n, err := strconv.Atoi(tok.Value)
	if errors.Is(err, strconv.ErrRange) {
		return 0, tooLarge
	}
	if err != nil {
		return 0, &Error{Found: tok, Err: fmt.Errorf("invalid number %q: %w", tok.Value, err)}
	}
	if n > stitch.MaxStitches {
		return 0, tooLarge
	}
	if n < least {
		return 0, &Error{Found: tok, Expected: []string{fmt.Sprintf("a number >= %d", least)}}
	}
	return n, nil
}

func (p *Parser) skipNewlines() {
	for p.checkKind(lexer.Newline) {
		p.advance()
	}
}

// Start parses the whole token stream. On failure it returns no tree at all.
func (p *Parser) Start() (*ast.PartNode, error) {
	p.skipNewlines()
	part, err := p.pattern()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expectKind(lexer.EOI); err != nil {
		return nil, err
	}
	return part, nil
}

func (p *Parser) startsElement() bool {
	return p.checkKind(lexer.Stitch, lexer.Asterisk, lexer.OpenGroup)
}

func (p *Parser) pattern() (*ast.PartNode, error) {
	part := &ast.PartNode{}

	if p.checkValue(castOnWords...) {
		n, err := p.castOn()
		if err != nil {
			return nil, err
		}
		part.CastOn = n
		p.castOnKnown = true

		if _, err := p.expectKind(lexer.Newline); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}

	switch {
	case p.startsElement():
		instructions, err := p.stitchSequence()
		if err != nil {
			return nil, err
		}
		part.Rows = []*ast.RowNode{{Number: 1, Instructions: instructions}}
	case p.checkValue("row"):
		rows, err := p.rows()
		if err != nil {
			return nil, err
		}
		part.Rows = rows
	default:
		return nil, &Error{Found: p.cur, Expected: []string{`"row"`, lexer.Stitch.String(), `"*"`, `"("`, `"["`}}
	}

	// Without a stated cast-on, the first row defines it. The count recorded
	// here is provisional; the expander recomputes it from stitch consumption.
	if !p.castOnKnown {
		part.CastOn = len(part.Rows[0].Instructions)
		part.AssumedCastOn = true
	}
	return part, nil
}

func (p *Parser) castOn() (int, error) {
	if p.isValue("cast") {
		if _, err := p.expectValue("on"); err != nil {
			return 0, err
		}
	} else if _, err := p.expectValue("caston", "co"); err != nil {
		return 0, err
	}

	n, err := p.expectNumber(1)
	if err != nil {
		return 0, err
	}
	if _, err := p.expectValue(castOnUnits...); err != nil {
		return 0, err
	}
	return n, nil
}

func (p *Parser) rows() ([]*ast.RowNode, error) {
	first, err := p.row()
	if err != nil {
		return nil, err
	}
	rows := []*ast.RowNode{first}

	for p.checkKind(lexer.Newline) {
		p.skipNewlines()
		if p.checkKind(lexer.EOI) {
			break
		}
		next, err := p.row()
		if err != nil {
			return nil, err
		}
		rows = append(rows, next)
	}
	return rows, nil
}

func (p *Parser) row() (*ast.RowNode, error) {
	if _, err := p.expectValue("row"); err != nil {
		return nil, err
	}
	number, err := p.expectNumber(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectValue(":"); err != nil {
		return nil, err
	}
	instructions, err := p.stitchSequence()
	if err != nil {
		return nil, err
	}
	p.isValue(".")
	return &ast.RowNode{Number: number, Instructions: instructions}, nil
}

func (p *Parser) stitchSequence() ([]ast.Instruction, error) {
	instructions, err := p.element()
	if err != nil {
		return nil, err
	}
	for p.isValue(",") {
		more, err := p.element()
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, more...)
	}
	return instructions, nil
}

func (p *Parser) element() ([]ast.Instruction, error) {
	switch {
	case p.checkKind(lexer.Asterisk, lexer.OpenGroup):
		r, err := p.repeat()
		if err != nil {
			return nil, err
		}
		return []ast.Instruction{r}, nil
	case p.checkKind(lexer.Stitch):
		return p.stitch()
	default:
		return nil, &Error{Found: p.cur, Expected: []string{lexer.Stitch.String(), `"*"`, `"("`, `"["`}}
	}
}

func (p *Parser) repeat() (*ast.RepeatNode, error) {
	if !p.castOnKnown {
		return nil, &Error{Found: p.cur, Err: ErrRepeatWithoutCastOn}
	}

	open := p.cur
	p.advance()

	elements, err := p.stitchSequence()
	if err != nil {
		return nil, err
	}

	closing := "*"
	if open.Kind == lexer.OpenGroup {
		closing = closeBracket[open.Value]
	}
	if _, err := p.expectValue(closing); err != nil {
		return nil, err
	}

	node := &ast.RepeatNode{Elements: elements}
	times, ok, err := p.multiplier()
	if err != nil {
		return nil, err
	}
	if ok {
		node.Times = &times
	}
	return node, nil
}

// multiplier parses an optional explicit repeat count in any of its
// spellings. ok is false when no multiplier is present.
func (p *Parser) multiplier() (times int, ok bool, err error) {
	switch {
	case p.isValue(";"):
		if _, err := p.expectValue("repeat"); err != nil {
			return 0, false, err
		}
		if p.isValue("from") {
			if _, err := p.expectSeries("*", "to", "*"); err != nil {
				return 0, false, err
			}
		}
		times, err = p.expectNumber(0)
		if err != nil {
			return 0, false, err
		}
		if _, err := p.expectValue("times"); err != nil {
			return 0, false, err
		}
		return times, true, nil

	case p.isValue("x"):
		times, err = p.expectNumber(0)
		if err != nil {
			return 0, false, err
		}
		return times, true, nil

	case p.checkKind(lexer.Number):
		times, err = p.expectNumber(0)
		if err != nil {
			return 0, false, err
		}
		if _, err := p.expectValue("times"); err != nil {
			return 0, false, err
		}
		return times, true, nil
	}
	return 0, false, nil
}

func (p *Parser) stitch() ([]ast.Instruction, error) {
	tok, err := p.expectKind(lexer.Stitch)
	if err != nil {
		return nil, err
	}
	count := 1
	if p.checkKind(lexer.Number) {
		if count, err = p.expectNumber(1); err != nil {
			return nil, err
		}
	}

	out := make([]ast.Instruction, count)
	for i := range out {
		out[i] = ast.Stitch(tok.Value)
	}
	return out, nil
}

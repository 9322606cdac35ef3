package lexer

import "github.com/specialistvlad/knitchart/internal/stitch"

// vocabulary lists single words that are stitches on their own. "sl" is
// recognised here so that it reaches the model, which rejects it as an
// abbreviation without chart semantics.
var vocabulary = map[string]bool{
	"k":   true,
	"p":   true,
	"yo":  true,
	"kfb": true,
	"ssk": true,
	"ssp": true,
	"sl":  true,
}

var prefixes = map[string]bool{"k": true, "p": true, "c": true, "s": true}

var suffixes = map[string]bool{"tog": true, "tbl": true, "f": true, "b": true, "kp": true}

// Combine merges primitive runs into STITCH tokens. Tokens that start no
// stitch pass through unchanged.
func Combine(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// prefix number suffix, e.g. "k" "2" "tog"
		if i+2 < len(tokens) &&
			tok.Kind == Word && prefixes[tok.Value] &&
			tokens[i+1].Kind == Number &&
			tokens[i+2].Kind == Word && suffixes[tokens[i+2].Value] {
			value := tok.Value + tokens[i+1].Value + tokens[i+2].Value
			i += 2

			// "s" "2" "kp" "2" spells s2kp2; the trailing count belongs to the name.
			if i+1 < len(tokens) && tokens[i+1].Kind == Number && stitch.Known(value+tokens[i+1].Value) {
				value += tokens[i+1].Value
				i++
			}
			out = append(out, Token{Kind: Stitch, Value: value, Pos: tok.Pos})
			continue
		}

		if tok.Kind == Word && vocabulary[tok.Value] {
			out = append(out, Token{Kind: Stitch, Value: tok.Value, Pos: tok.Pos})
			continue
		}

		out = append(out, tok)
	}
	return out
}

// Package stitch holds the static table of stitches the system understands.
//
// Each entry records how many loops a stitch works off the needle (consumed),
// how many it leaves behind (produced) and the two chart symbols used to draw
// it: one for right-side rows and one for wrong-side rows. The table is the
// single source of truth for stitch semantics; every later stage asks it
// instead of hard-coding counts or symbols.
package stitch

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Category classifies a stitch by its effect on the stitch count.
type Category string

const (
	Regular  Category = "regular"
	Increase Category = "increase"
	Decrease Category = "decrease"
)

// EmptySymbol marks a chart cell that holds no stitch.
const EmptySymbol = "X"

// MaxStitches caps every count in a pattern: a stitch count, a repeat count,
// a cast-on and the stitches a single repeat works.
const MaxStitches = 10000

// Info is one row of the stitch table.
type Info struct {
	Abbrev   string
	Name     string
	Category Category
	Consumed int
	Produced int
	SymbolRS string
	SymbolWS string
}

// Delta is the net change in stitch count caused by working the stitch once.
func (i Info) Delta() int {
	return i.Produced - i.Consumed
}

// order fixes the canonical ordering used for keys and listings.
var order = []string{"k", "p", "yo", "kfb", "k2tog", "p2tog", "ssk", "ssp", "s2kp2"}

var table = map[string]Info{
	"k":     {Abbrev: "k", Name: "knit", Category: Regular, Consumed: 1, Produced: 1, SymbolRS: " ", SymbolWS: "-"},
	"p":     {Abbrev: "p", Name: "purl", Category: Regular, Consumed: 1, Produced: 1, SymbolRS: "-", SymbolWS: " "},
	"yo":    {Abbrev: "yo", Name: "yarn over", Category: Increase, Consumed: 0, Produced: 1, SymbolRS: "O", SymbolWS: "O"},
	"kfb":   {Abbrev: "kfb", Name: "knit in front and back", Category: Increase, Consumed: 1, Produced: 2, SymbolRS: "Y", SymbolWS: "Y"},
	"k2tog": {Abbrev: "k2tog", Name: "knit 2 together", Category: Decrease, Consumed: 2, Produced: 1, SymbolRS: "/", SymbolWS: "/."},
	"p2tog": {Abbrev: "p2tog", Name: "purl 2 together", Category: Decrease, Consumed: 2, Produced: 1, SymbolRS: "/.", SymbolWS: "/"},
	"ssk":   {Abbrev: "ssk", Name: "slip slip knit", Category: Decrease, Consumed: 2, Produced: 1, SymbolRS: `\`, SymbolWS: `\.`},
	"ssp":   {Abbrev: "ssp", Name: "slip slip purl", Category: Decrease, Consumed: 2, Produced: 1, SymbolRS: `\.`, SymbolWS: `\`},
	"s2kp2": {Abbrev: "s2kp2", Name: "slip 2, knit 1, pass 2 slipped stitches over", Category: Decrease, Consumed: 3, Produced: 1, SymbolRS: "^", SymbolWS: "^"},
}

// Lookup returns the table entry for an abbreviation.
func Lookup(abbrev string) (Info, bool) {
	info, ok := table[abbrev]
	return info, ok
}

// Known reports whether the abbreviation is in the table.
func Known(abbrev string) bool {
	_, ok := table[abbrev]
	return ok
}

// Abbreviations returns every known abbreviation in canonical order.
func Abbreviations() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Meaning is what a chart symbol stands for on each side of the fabric.
// Either field may be empty when no stitch draws that symbol on that side.
type Meaning struct {
	RS string
	WS string
}

// CanonicalKey maps every symbol any stitch can draw to its meanings.
func CanonicalKey() map[string]Meaning {
	key := make(map[string]Meaning)
	for _, abbrev := range order {
		info := table[abbrev]

		rs := key[info.SymbolRS]
		rs.RS = info.Name
		key[info.SymbolRS] = rs

		ws := key[info.SymbolWS]
		ws.WS = info.Name
		key[info.SymbolWS] = ws
	}
	return key
}

// maxSuggestDistance bounds how different a suggestion may be from the input.
const maxSuggestDistance = 2

// Suggest returns the known abbreviation closest to an unknown one, if any
// is within a small edit distance.
func Suggest(abbrev string) (string, bool) {
	target := strings.ToLower(abbrev)
	if target == "" {
		return "", false
	}

	// A fuzzy subsequence match (e.g. "kf" in "kfb") wins outright.
	if ranks := fuzzy.RankFindFold(target, order); len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		if best.Distance <= maxSuggestDistance {
			return best.Target, true
		}
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range order {
		if d := fuzzy.LevenshteinDistance(target, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

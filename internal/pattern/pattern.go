// Package pattern holds the fully expanded, stitch-by-stitch form of a part.
//
// An ExpandedRow is a flat list of stitches with no repeats left in it. A
// Pattern is an ordered run of expanded rows whose stitch counts agree: each
// row starts with exactly the stitches the previous row left on the needle.
package pattern

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/knitchart/internal/model"
)

// ExpandedRow is one row of a pattern with every repeat worked out.
type ExpandedRow struct {
	number   int
	stitches []model.Stitch
}

// NewExpandedRow builds a row from at least one stitch.
func NewExpandedRow(number int, stitches ...model.Stitch) (*ExpandedRow, error) {
	if number < 1 {
		return nil, &ConsistencyError{Row: number, Reason: "row numbers start at 1"}
	}
	if len(stitches) == 0 {
		return nil, &ConsistencyError{Row: number, Reason: "an expanded row must contain at least one stitch"}
	}
	return &ExpandedRow{number: number, stitches: append([]model.Stitch(nil), stitches...)}, nil
}

// Number is the row number.
func (r *ExpandedRow) Number() int { return r.number }

// Stitches returns a copy of the row's stitches in working order.
func (r *ExpandedRow) Stitches() []model.Stitch {
	return append([]model.Stitch(nil), r.stitches...)
}

// Len is the number of stitches worked, which is also the number of chart
// cells the row needs.
func (r *ExpandedRow) Len() int { return len(r.stitches) }

// StartCount is the number of stitches on the needle before the row.
func (r *ExpandedRow) StartCount() int {
	n := 0
	for _, s := range r.stitches {
		n += s.Consumed()
	}
	return n
}

// EndCount is the number of stitches on the needle after the row.
func (r *ExpandedRow) EndCount() int {
	n := r.StartCount()
	for _, s := range r.stitches {
		n += s.Delta()
	}
	return n
}

// IsRightSide reports whether the row is worked on the right side of the
// fabric. Odd rows are right-side rows.
func (r *ExpandedRow) IsRightSide() bool { return r.number%2 == 1 }

// SymbolsRS returns the right-side symbol of every stitch.
func (r *ExpandedRow) SymbolsRS() []string { return r.symbols(true) }

// SymbolsWS returns the wrong-side symbol of every stitch.
func (r *ExpandedRow) SymbolsWS() []string { return r.symbols(false) }

// Symbols returns the symbols for the side the row is worked on.
func (r *ExpandedRow) Symbols() []string { return r.symbols(r.IsRightSide()) }

func (r *ExpandedRow) symbols(rightSide bool) []string {
	out := make([]string, len(r.stitches))
	for i, s := range r.stitches {
		out[i] = s.Symbol(rightSide)
	}
	return out
}

func (r *ExpandedRow) String() string {
	return fmt.Sprintf("row %d (%d stitches, %d -> %d)", r.number, r.Len(), r.StartCount(), r.EndCount())
}

// Pattern is an ordered, validated collection of expanded rows.
type Pattern struct {
	rows []*ExpandedRow
}

// New sorts the rows by number and checks that numbers are unique and
// sequential and that stitch counts carry over from row to row.
func New(rows ...*ExpandedRow) (*Pattern, error) {
	if len(rows) == 0 {
		return nil, &ConsistencyError{Reason: "a pattern must contain at least one row"}
	}

	sorted := append([]*ExpandedRow(nil), rows...)
	for _, r := range sorted {
		if r == nil {
			return nil, &ConsistencyError{Reason: "nil row"}
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].number < sorted[j].number })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		switch {
		case cur.number == prev.number:
			return nil, &ConsistencyError{Row: cur.number, Reason: "row numbers must be unique"}
		case cur.number != prev.number+1:
			return nil, &ConsistencyError{
				Row:      cur.number,
				Expected: prev.number + 1,
				Actual:   cur.number,
				Reason:   "row numbers must be sequential",
			}
		case cur.StartCount() != prev.EndCount():
			return nil, &ConsistencyError{
				Row:      cur.number,
				Expected: prev.EndCount(),
				Actual:   cur.StartCount(),
				Reason:   "the start count of each row must equal the end count of the previous row",
			}
		}
	}
	return &Pattern{rows: sorted}, nil
}

// Rows returns the rows in ascending order.
func (p *Pattern) Rows() []*ExpandedRow {
	return append([]*ExpandedRow(nil), p.rows...)
}

// Height is the number of rows.
func (p *Pattern) Height() int { return len(p.rows) }

// Row returns the row with the given number.
func (p *Pattern) Row(number int) (*ExpandedRow, bool) {
	for _, r := range p.rows {
		if r.number == number {
			return r, true
		}
	}
	return nil, false
}

// MaxLen is the stitch count of the longest row.
func (p *Pattern) MaxLen() int {
	longest := 0
	for _, r := range p.rows {
		if r.Len() > longest {
			longest = r.Len()
		}
	}
	return longest
}

// StitchesUsed returns every distinct abbreviation in first-seen order.
func (p *Pattern) StitchesUsed() []string {
	return p.distinct(func(r *ExpandedRow) []string {
		out := make([]string, len(r.stitches))
		for i, s := range r.stitches {
			out[i] = s.Abbrev
		}
		return out
	})
}

// SymbolsUsed returns every distinct symbol drawn, in first-seen order. Each
// row contributes the symbols of the side it is worked on.
func (p *Pattern) SymbolsUsed() []string {
	return p.distinct((*ExpandedRow).Symbols)
}

func (p *Pattern) distinct(values func(*ExpandedRow) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range p.rows {
		for _, v := range values(r) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

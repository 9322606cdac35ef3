package chart

import (
	"fmt"

	"github.com/specialistvlad/knitchart/internal/stitch"
)

// CellKind tells stitch cells apart from padding.
type CellKind int

const (
	StitchCell CellKind = iota
	EmptyCell
)

func (k CellKind) String() string {
	switch k {
	case StitchCell:
		return "stitch"
	case EmptyCell:
		return "empty"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Cell is a symbol occupying the half-open coordinate range [Start, End).
// Larger coordinates are further left on the chart.
type Cell struct {
	Symbol   string
	Start    int
	End      int
	Kind     CellKind
	Category stitch.Category // empty for EmptyCell
}

func emptyCell(at int) Cell {
	return Cell{Symbol: stitch.EmptySymbol, Start: at, End: at + 1, Kind: EmptyCell}
}

func (c Cell) shift(by int) Cell {
	c.Start += by
	c.End += by
	return c
}

// Row is one chart row. Cells are kept in ascending coordinate order.
type Row struct {
	Number int
	cells  []Cell
}

// Cells returns a copy of the row's cells in ascending coordinate order.
func (r *Row) Cells() []Cell {
	return append([]Cell(nil), r.cells...)
}

// Len is the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Start is the lowest coordinate the row occupies.
func (r *Row) Start() int {
	if len(r.cells) == 0 {
		return 0
	}
	return r.cells[0].Start
}

// End is one past the highest coordinate the row occupies.
func (r *Row) End() int {
	if len(r.cells) == 0 {
		return 0
	}
	return r.cells[len(r.cells)-1].End
}

// Width is the extent of the row on the coordinate line.
func (r *Row) Width() int { return r.End() - r.Start() }

// IsRightSide reports whether the row is worked on the right side.
func (r *Row) IsRightSide() bool { return r.Number%2 == 1 }

// HasPadding reports whether any cell is an empty cell.
func (r *Row) HasPadding() bool {
	for _, c := range r.cells {
		if c.Kind == EmptyCell {
			return true
		}
	}
	return false
}

// Symbols returns the cell symbols from the leftmost cell to the rightmost,
// which is descending coordinate order.
func (r *Row) Symbols() []string {
	out := make([]string, len(r.cells))
	for i := range r.cells {
		out[i] = r.cells[len(r.cells)-1-i].Symbol
	}
	return out
}

func (r *Row) clone() *Row {
	return &Row{Number: r.Number, cells: r.Cells()}
}

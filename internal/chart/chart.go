// Package chart lays a pattern out on a coordinate grid.
//
// Every stitch becomes a Cell anchored at a half-open range on a shared
// number line where larger coordinates are further to the left, the way a
// knitter reads a chart. Rows of different lengths stay aligned because
// their cells share that number line: a narrower row is padded with empty
// cells at the coordinates it does not reach, and a row can be moved as a
// whole with ShiftRowLeft and ShiftRowRight, always within [0, Width).
package chart

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/knitchart/internal/pattern"
)

// Chart holds one Row per pattern row, in ascending row order.
type Chart struct {
	rows  []*Row
	width int
	key   *Key
}

// New lays out every row of the pattern.
//
// Cell i of each row sits at [i, i+1). On right-side (odd) rows cell i is
// stitch i drawn with its right-side symbol, so the row reads right to left.
// On wrong-side (even) rows cell i is stitch n-1-i drawn with its wrong-side
// symbol.
func New(p *pattern.Pattern) (*Chart, error) {
	if p == nil {
		return nil, errors.New("cannot chart a nil pattern")
	}

	c := &Chart{width: p.MaxLen()}
	for _, er := range p.Rows() {
		c.rows = append(c.rows, layoutRow(er))
	}

	key, err := NewKey(p.SymbolsUsed()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}
	c.key = key
	return c, nil
}

func layoutRow(er *pattern.ExpandedRow) *Row {
	stitches := er.Stitches()
	n := len(stitches)
	rightSide := er.IsRightSide()

	row := &Row{Number: er.Number(), cells: make([]Cell, n)}
	for i := range row.cells {
		s := stitches[i]
		if !rightSide {
			s = stitches[n-1-i]
		}
		row.cells[i] = Cell{
			Symbol:   s.Symbol(rightSide),
			Start:    i,
			End:      i + 1,
			Kind:     StitchCell,
			Category: s.Category,
		}
	}
	return row
}

// Width is the stitch count of the longest row. Rows never leave [0, Width).
func (c *Chart) Width() int { return c.width }

// Height is the number of rows.
func (c *Chart) Height() int { return len(c.rows) }

// Key returns the symbols used by the chart and their meanings.
func (c *Chart) Key() *Key { return c.key }

// Rows returns copies of every row in ascending order.
func (c *Chart) Rows() []*Row {
	out := make([]*Row, len(c.rows))
	for i, r := range c.rows {
		out[i] = r.clone()
	}
	return out
}

// LastRowNumber is the highest row number in the chart.
func (c *Chart) LastRowNumber() int {
	if len(c.rows) == 0 {
		return 0
	}
	return c.rows[len(c.rows)-1].Number
}

func (c *Chart) find(number int) (int, error) {
	for i, r := range c.rows {
		if r.Number == number {
			return i, nil
		}
	}
	return -1, noSuchRow(number)
}

// Row returns a copy of the row with the given number.
func (c *Chart) Row(number int) (*Row, error) {
	i, err := c.find(number)
	if err != nil {
		return nil, err
	}
	return c.rows[i].clone(), nil
}

// ShiftRowLeft moves every cell of the row amount coordinates to the left.
// The row is left unchanged if it would end beyond Width.
func (c *Chart) ShiftRowLeft(number, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeShift, amount)
	}
	return c.shift(number, amount)
}

// ShiftRowRight moves every cell of the row amount coordinates to the right.
// The row is left unchanged if it would start below 0.
func (c *Chart) ShiftRowRight(number, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeShift, amount)
	}
	return c.shift(number, -amount)
}

func (c *Chart) shift(number, by int) error {
	i, err := c.find(number)
	if err != nil {
		return err
	}
	row := c.rows[i]

	start, end := row.Start()+by, row.End()+by
	if start < 0 || end > c.width {
		return &BoundsError{Row: number, Start: start, End: end, Width: c.width, Reason: "shift goes beyond chart bounds"}
	}

	shifted := make([]Cell, len(row.cells))
	for j, cell := range row.cells {
		shifted[j] = cell.shift(by)
	}
	row.cells = shifted
	return nil
}

// PaddedRow returns a copy of the row with an empty cell at every coordinate
// in [0, width) that the row does not occupy. The result has exactly width
// cells.
func (c *Chart) PaddedRow(number, width int) (*Row, error) {
	i, err := c.find(number)
	if err != nil {
		return nil, err
	}
	row := c.rows[i]
	if row.Start() < 0 || row.End() > width {
		return nil, &BoundsError{Row: number, Start: row.Start(), End: row.End(), Width: width, Reason: "row is wider than the padding width"}
	}

	padded := &Row{Number: row.Number, cells: make([]Cell, 0, width)}
	for at := 0; at < row.Start(); at++ {
		padded.cells = append(padded.cells, emptyCell(at))
	}
	padded.cells = append(padded.cells, row.cells...)
	for at := row.End(); at < width; at++ {
		padded.cells = append(padded.cells, emptyCell(at))
	}
	return padded, nil
}

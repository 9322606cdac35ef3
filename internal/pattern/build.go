package pattern

import (
	"fmt"

	"github.com/specialistvlad/knitchart/internal/model"
	"github.com/specialistvlad/knitchart/internal/stitch"
)

// Build expands every row of the part into plain stitches.
//
// Rows are expanded in order. Each row is given the stitches left by the row
// before it (the cast-on for row 1) and an implicit repeat is worked as many
// times as fits between what precedes it and what follows it. The part is
// never modified: an assumed cast-on is corrected on a copy.
func Build(part *model.Part) (*Pattern, error) {
	if part == nil {
		return nil, &ExpansionError{Reason: "nil part"}
	}
	part, err := resolveCastOn(part)
	if err != nil {
		return nil, err
	}

	rows := part.Rows()
	expanded := make([]*ExpandedRow, 0, len(rows))
	budget := part.CastOn()
	for i, row := range rows {
		er, err := expandRow(row, budget)
		if err != nil {
			return nil, err
		}
		if i == 0 && er.StartCount() != part.CastOn() {
			return nil, &ExpansionError{
				Row: row.Number(),
				Reason: fmt.Sprintf("first row works %d stitches but %d were cast on",
					er.StartCount(), part.CastOn()),
			}
		}
		expanded = append(expanded, er)
		budget = er.EndCount()
	}
	return New(expanded...)
}

// resolveCastOn replaces an assumed cast-on with the number of stitches the
// first row actually works.
func resolveCastOn(part *model.Part) (*model.Part, error) {
	if !part.AssumedCastOn() {
		return part, nil
	}
	first := part.Rows()[0]
	if _, _, ok := first.ImplicitRepeat(); ok {
		return nil, &ExpansionError{
			Row:    first.Number(),
			Reason: "cannot infer the cast-on from a row with an implicit repeat",
		}
	}
	corrected, err := part.WithCastOn(first.Consumed())
	if err != nil {
		return nil, fmt.Errorf("failed to correct assumed cast-on: %w", err)
	}
	return corrected, nil
}

// rowExpansion carries what is fixed for the whole row.
type rowExpansion struct {
	row    *model.Row
	budget int
	// after is the number of stitches following the implicit repeat.
	after int
}

// accumulator is the state threaded through the fold over a row.
type accumulator struct {
	consumed int
	stitches []model.Stitch
}

func expandRow(row *model.Row, budget int) (*ExpandedRow, error) {
	x := rowExpansion{row: row, budget: budget, after: stitchesAfter(row)}

	acc := accumulator{}
	for _, in := range row.Instructions() {
		var err error
		if acc, err = x.step(acc, in); err != nil {
			return nil, err
		}
	}

	er, err := NewExpandedRow(row.Number(), acc.stitches...)
	if err != nil {
		return nil, &ExpansionError{Row: row.Number(), Reason: err.Error()}
	}
	return er, nil
}

func (x rowExpansion) step(acc accumulator, in model.Instruction) (accumulator, error) {
	var worked []model.Stitch
	switch v := in.(type) {
	case model.Stitch:
		worked = []model.Stitch{v}
	case *model.Repeat:
		if v.IsImplicit() {
			var err error
			if worked, err = x.implicit(acc, v); err != nil {
				return acc, err
			}
		} else {
			worked = v.Expand()
		}
	default:
		return acc, &ExpansionError{Row: x.row.Number(), Reason: fmt.Sprintf("unsupported instruction type %T", in)}
	}

	next := accumulator{
		consumed: acc.consumed,
		stitches: append(append(make([]model.Stitch, 0, len(acc.stitches)+len(worked)), acc.stitches...), worked...),
	}
	for _, s := range worked {
		next.consumed += s.Consumed()
	}
	return next, nil
}

// implicit works out how many passes of r fit into what is left of the row.
func (x rowExpansion) implicit(acc accumulator, r *model.Repeat) ([]model.Stitch, error) {
	remaining := x.budget - acc.consumed
	if remaining <= 0 {
		return nil, &ExpansionError{Row: x.row.Number(), Reason: "not enough information to expand repeat"}
	}

	pass := r.Pass()
	length := remaining - x.after
	if length > stitch.MaxStitches {
		return nil, &ExpansionError{
			Row:    x.row.Number(),
			Reason: fmt.Sprintf("the repeat would work %d stitches, more than the limit of %d", length, stitch.MaxStitches),
		}
	}
	if length < 0 || length%len(pass) != 0 {
		return nil, &ExpansionError{
			Row: x.row.Number(),
			Reason: fmt.Sprintf("the length of the repeat is %d, which does not match the number of elements in the repeat %d",
				length, len(pass)),
		}
	}

	times := length / len(pass)
	out := make([]model.Stitch, 0, length)
	for i := 0; i < times; i++ {
		out = append(out, pass...)
	}
	return out, nil
}

// stitchesAfter counts the stitches that follow the row's implicit repeat.
// A later explicit repeat counts as its expanded pass length times its repeat
// count, the same measure the implicit repeat is divided by.
func stitchesAfter(row *model.Row) int {
	idx, _, ok := row.ImplicitRepeat()
	if !ok {
		return 0
	}
	after := 0
	for _, in := range row.Instructions()[idx+1:] {
		switch v := in.(type) {
		case model.Stitch:
			after += v.Consumed()
		case *model.Repeat:
			times, _ := v.Times()
			after += len(v.Pass()) * times
		}
	}
	return after
}

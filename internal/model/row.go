// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Row and Part, the containers of the model.
package model

import (
	"fmt"
	"strconv"
)

// Row is one numbered row of instructions.
type Row struct {
	number       int
	instructions []Instruction
}

// NewRow validates and builds a row. A row holds at least one instruction
// and at most one implicit repeat.
func NewRow(number int, instructions ...Instruction) (*Row, error) {
	if number < 1 {
		return nil, &ValidationError{
			Field:    "row number",
			Expected: ">= 1",
			Actual:   strconv.Itoa(number),
			Reason:   "row numbers start at 1",
		}
	}
	if len(instructions) == 0 {
		return nil, &ValidationError{
			Field:  fmt.Sprintf("row %d", number),
			Reason: "a row must have at least one instruction",
		}
	}

	implicit := 0
	for i, in := range instructions {
		switch v := in.(type) {
		case Stitch:
		case *Repeat:
			if v == nil {
				return nil, &ValidationError{Field: fmt.Sprintf("row %d instruction %d", number, i), Reason: "nil repeat"}
			}
			if v.IsImplicit() {
				implicit++
			}
		default:
			return nil, &ValidationError{
				Field:  fmt.Sprintf("row %d instruction %d", number, i),
				Actual: fmt.Sprintf("%T", in),
				Reason: "unsupported instruction type",
			}
		}
	}
	if implicit > 1 {
		return nil, &ValidationError{
			Field:    fmt.Sprintf("row %d", number),
			Expected: "at most 1 implicit repeat",
			Actual:   strconv.Itoa(implicit),
			Reason:   "a row may only have one implicit repeat",
		}
	}

	return &Row{number: number, instructions: append([]Instruction(nil), instructions...)}, nil
}

// Number is the 1-based row number.
func (r *Row) Number() int { return r.number }

// Instructions returns a copy of the row's instructions.
func (r *Row) Instructions() []Instruction {
	return append([]Instruction(nil), r.instructions...)
}

// ImplicitRepeat returns the row's implicit repeat and its index, if any.
func (r *Row) ImplicitRepeat() (int, *Repeat, bool) {
	for i, in := range r.instructions {
		if rep, ok := in.(*Repeat); ok && rep.IsImplicit() {
			return i, rep, true
		}
	}
	return -1, nil, false
}

// Consumed is the number of stitches the row works when it has no implicit
// repeat. An implicit repeat contributes nothing.
func (r *Row) Consumed() int {
	total := 0
	for _, in := range r.instructions {
		total += in.Consumed()
	}
	return total
}

// Part is the cast-on count and every row of a piece of knitting.
type Part struct {
	castOn        int
	rows          []*Row
	assumedCastOn bool
}

// NewPart validates and builds a part. Rows must be numbered 1, 2, 3 and so
// on in order. assumedCastOn marks a cast-on that was not stated and must be
// recomputed from the first row before expansion.
func NewPart(castOn int, assumedCastOn bool, rows ...*Row) (*Part, error) {
	if castOn < 1 {
		return nil, &ValidationError{
			Field:    "cast-on",
			Expected: ">= 1",
			Actual:   strconv.Itoa(castOn),
			Reason:   "cast-on number must be at least 1",
		}
	}
	if len(rows) == 0 {
		return nil, &ValidationError{Field: "rows", Reason: "a part must have at least one row"}
	}
	for i, row := range rows {
		if row == nil {
			return nil, &ValidationError{Field: fmt.Sprintf("row at index %d", i), Reason: "nil row"}
		}
		if row.Number() != i+1 {
			return nil, &ValidationError{
				Field:    fmt.Sprintf("row at index %d", i),
				Expected: strconv.Itoa(i + 1),
				Actual:   strconv.Itoa(row.Number()),
				Reason:   "row numbers must be unique and sequential",
			}
		}
	}
	return &Part{castOn: castOn, rows: append([]*Row(nil), rows...), assumedCastOn: assumedCastOn}, nil
}

// CastOn is the number of stitches cast on.
func (p *Part) CastOn() int { return p.castOn }

// AssumedCastOn reports whether the cast-on was inferred rather than stated.
func (p *Part) AssumedCastOn() bool { return p.assumedCastOn }

// Rows returns a copy of the row list. Rows themselves are immutable.
func (p *Part) Rows() []*Row {
	return append([]*Row(nil), p.rows...)
}

// WithCastOn returns a copy of p with the given, now stated, cast-on.
func (p *Part) WithCastOn(castOn int) (*Part, error) {
	return NewPart(castOn, false, p.rows...)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Repeat, a group of instructions worked more than once.
//
// A repeat either states its count ("*k2, p2*; repeat 3 times") or leaves it
// to be inferred from the stitches left on the needle ("*k2, p2*"). Only the
// outermost repeat of a row may be implicit, and repeats nest at most one
// level deep.
package model

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/knitchart/internal/stitch"
)

// MaxRepeatDepth is the deepest allowed repeat nesting. A repeat holding only
// stitches has depth 1.
const MaxRepeatDepth = 2

// Repeat is an ordered group of instructions with an optional count.
type Repeat struct {
	elements []Instruction
	times    int // zero when implicit
}

// NewRepeat builds an explicit repeat worked times times.
func NewRepeat(times int, elements ...Instruction) (*Repeat, error) {
	if times < 1 {
		return nil, &ValidationError{
			Field:    "repeat count",
			Expected: ">= 1",
			Actual:   strconv.Itoa(times),
			Reason:   "a repeat must be worked at least once",
		}
	}
	return newRepeat(times, elements)
}

// NewImplicitRepeat builds a repeat whose count is inferred on expansion.
func NewImplicitRepeat(elements ...Instruction) (*Repeat, error) {
	return newRepeat(0, elements)
}

func newRepeat(times int, elements []Instruction) (*Repeat, error) {
	if len(elements) == 0 {
		return nil, &ValidationError{
			Field:  "repeat elements",
			Reason: "a repeat must contain at least one element",
		}
	}

	r := &Repeat{elements: append([]Instruction(nil), elements...), times: times}
	for i, el := range r.elements {
		switch v := el.(type) {
		case Stitch:
		case *Repeat:
			if v == nil {
				return nil, &ValidationError{Field: fmt.Sprintf("repeat element %d", i), Reason: "nil repeat"}
			}
			if v.IsImplicit() {
				return nil, &ValidationError{
					Field:  fmt.Sprintf("repeat element %d", i),
					Reason: "a nested repeat must state its count",
				}
			}
		default:
			return nil, &ValidationError{
				Field:  fmt.Sprintf("repeat element %d", i),
				Actual: fmt.Sprintf("%T", el),
				Reason: "unsupported instruction type",
			}
		}
	}

	if depth := r.Depth(); depth > MaxRepeatDepth {
		return nil, &ValidationError{
			Field:    "repeat nesting",
			Expected: fmt.Sprintf("<= %d", MaxRepeatDepth),
			Actual:   strconv.Itoa(depth),
			Reason:   "repeats cannot be nested more than once",
		}
	}

	// Nested repeats were bounded when they were built, so the pass itself
	// stays small enough to measure.
	pass := len(r.Pass())
	if pass > stitch.MaxStitches || (times > 0 && times > stitch.MaxStitches/pass) {
		return nil, &ValidationError{
			Field:    "repeat count",
			Expected: fmt.Sprintf("<= %d stitches", stitch.MaxStitches),
			Actual:   fmt.Sprintf("%d x %d", pass, times),
			Reason:   "a repeat cannot work that many stitches",
		}
	}
	return r, nil
}

// Elements returns a copy of the repeat's instructions.
func (r *Repeat) Elements() []Instruction {
	return append([]Instruction(nil), r.elements...)
}

// Len is the number of top-level elements in the repeat.
func (r *Repeat) Len() int { return len(r.elements) }

// Times returns the stated count. ok is false for an implicit repeat.
func (r *Repeat) Times() (times int, ok bool) {
	return r.times, r.times > 0
}

// IsImplicit reports whether the count is left to be inferred.
func (r *Repeat) IsImplicit() bool { return r.times == 0 }

// Depth is 1 plus the depth of the deepest nested repeat.
func (r *Repeat) Depth() int {
	deepest := 0
	for _, el := range r.elements {
		if nested, ok := el.(*Repeat); ok {
			if d := nested.Depth(); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// Pass returns the stitches of a single pass through the repeat, with nested
// repeats expanded.
func (r *Repeat) Pass() []Stitch {
	var out []Stitch
	for _, el := range r.elements {
		switch v := el.(type) {
		case Stitch:
			out = append(out, v)
		case *Repeat:
			out = append(out, v.Expand()...)
		}
	}
	return out
}

// Expand returns the stitches of an explicit repeat worked Times times. An
// implicit repeat expands to nothing.
func (r *Repeat) Expand() []Stitch {
	pass := r.Pass()
	var out []Stitch
	if len(pass) > 0 && r.times <= stitch.MaxStitches/len(pass) {
		out = make([]Stitch, 0, len(pass)*r.times)
	}
	for i := 0; i < r.times; i++ {
		out = append(out, pass...)
	}
	return out
}

// Consumed implements Instruction.
func (r *Repeat) Consumed() int {
	total := 0
	for _, s := range r.Expand() {
		total += s.Consumed()
	}
	return total
}

func (*Repeat) isInstruction() {}

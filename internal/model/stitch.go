// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Stitch, the leaf of every instruction list.
package model

import (
	"fmt"

	"github.com/specialistvlad/knitchart/internal/stitch"
)

// Instruction is one entry of a row or repeat: a Stitch or a *Repeat.
type Instruction interface {
	// Consumed is the number of stitches the instruction works off the
	// needle. It is zero for an implicit repeat, whose size is not known
	// until the row is expanded.
	Consumed() int
	isInstruction()
}

// Stitch is an immutable value bound to one entry of the stitch table.
type Stitch struct {
	stitch.Info
}

// NewStitch looks the abbreviation up in the stitch table.
func NewStitch(abbrev string) (Stitch, error) {
	if abbrev == "" {
		return Stitch{}, &ValidationError{
			Field:  "stitch",
			Reason: "abbreviation must be a non-empty string",
		}
	}
	info, ok := stitch.Lookup(abbrev)
	if !ok {
		err := &ValidationError{
			Field:  "stitch",
			Actual: fmt.Sprintf("%q", abbrev),
			Reason: "unknown stitch abbreviation",
		}
		err.Expected = "one of the known abbreviations"
		if suggestion, ok := stitch.Suggest(abbrev); ok {
			err.Suggestion = suggestion
		}
		return Stitch{}, err
	}
	return Stitch{Info: info}, nil
}

// MustStitch is NewStitch for abbreviations known to be valid. It panics
// otherwise.
func MustStitch(abbrev string) Stitch {
	s, err := NewStitch(abbrev)
	if err != nil {
		panic(err)
	}
	return s
}

// Consumed implements Instruction.
func (s Stitch) Consumed() int { return s.Info.Consumed }

// Produced is the number of stitches left on the needle after working s.
func (s Stitch) Produced() int { return s.Info.Produced }

// Symbol returns the chart symbol for the given side of the fabric.
func (s Stitch) Symbol(rightSide bool) string {
	if rightSide {
		return s.SymbolRS
	}
	return s.SymbolWS
}

func (s Stitch) String() string { return s.Abbrev }

func (Stitch) isInstruction() {}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file translates the parser's syntax tree into the model.
//
// The tree only records what the text said. Translation is where stitch names
// are checked against the stitch table and where structural rules the
// grammar cannot express (nesting depth, one implicit repeat per row, row
// numbering) are enforced.
package model

import (
	"fmt"

	"github.com/specialistvlad/knitchart/internal/ast"
)

// FromAST translates a parsed part. It fails on the first invalid node.
func FromAST(node *ast.PartNode) (*Part, error) {
	if node == nil {
		return nil, &ValidationError{Field: "part", Reason: "nil part node"}
	}

	rows := make([]*Row, 0, len(node.Rows))
	for i, rn := range node.Rows {
		row, err := translateRow(rn)
		if err != nil {
			return nil, fmt.Errorf("failed to translate row at index %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return NewPart(node.CastOn, node.AssumedCastOn, rows...)
}

func translateRow(node *ast.RowNode) (*Row, error) {
	if node == nil {
		return nil, &ValidationError{Field: "row", Reason: "nil row node"}
	}
	instructions, err := translateInstructions(node.Instructions)
	if err != nil {
		return nil, err
	}
	return NewRow(node.Number, instructions...)
}

func translateInstructions(nodes []ast.Instruction) ([]Instruction, error) {
	out := make([]Instruction, 0, len(nodes))
	for _, n := range nodes {
		in, err := translateInstruction(n)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func translateInstruction(node ast.Instruction) (Instruction, error) {
	switch n := node.(type) {
	case *ast.StitchNode:
		return translateStitch(n)
	case *ast.RepeatNode:
		return translateRepeat(n)
	default:
		return nil, &ValidationError{
			Field:    "instruction",
			Expected: "*ast.StitchNode or *ast.RepeatNode",
			Actual:   fmt.Sprintf("%T", node),
			Reason:   "unsupported instruction type",
		}
	}
}

func translateStitch(node *ast.StitchNode) (Instruction, error) {
	if node == nil {
		return nil, &ValidationError{Field: "stitch", Reason: "nil stitch node"}
	}
	return NewStitch(node.Name)
}

func translateRepeat(node *ast.RepeatNode) (Instruction, error) {
	if node == nil {
		return nil, &ValidationError{Field: "repeat", Reason: "nil repeat node"}
	}
	elements, err := translateInstructions(node.Elements)
	if err != nil {
		return nil, err
	}
	if node.IsImplicit() {
		return NewImplicitRepeat(elements...)
	}
	return NewRepeat(*node.Times, elements...)
}

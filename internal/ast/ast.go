// Package ast defines the concrete syntax tree produced by the parser.
//
// Nodes only record what the text said: a StitchNode knows its name, not how
// many stitches it consumes. Stitch semantics are attached later, when the
// tree is translated into the domain model.
package ast

// Instruction is either a *StitchNode or a *RepeatNode.
type Instruction interface {
	instructionNode()
}

// StitchNode is a single stitch as written, e.g. "k" or "k2tog".
type StitchNode struct {
	Name string
}

// RepeatNode is a bracketed group. Times is nil when no multiplier was
// written and the count has to be inferred.
type RepeatNode struct {
	Elements []Instruction
	Times    *int
}

// RowNode is one row of instructions.
type RowNode struct {
	Number       int
	Instructions []Instruction
}

// PartNode is the root of a parsed pattern.
type PartNode struct {
	CastOn        int
	Rows          []*RowNode
	AssumedCastOn bool
}

func (*StitchNode) instructionNode() {}
func (*RepeatNode) instructionNode() {}

// Stitch is a shorthand constructor used by the parser and tests.
func Stitch(name string) *StitchNode {
	return &StitchNode{Name: name}
}

// Repeat builds a RepeatNode. Pass times <= 0 for an implicit repeat.
func Repeat(times int, elements ...Instruction) *RepeatNode {
	r := &RepeatNode{Elements: elements}
	if times > 0 {
		t := times
		r.Times = &t
	}
	return r
}

// IsImplicit reports whether the repeat count was left unstated.
func (r *RepeatNode) IsImplicit() bool {
	return r.Times == nil
}

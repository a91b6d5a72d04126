// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// Node is a DAG Node (spec.md §3): either a Leaf (Test == nil,
// Verdict holds the inferences resolved with no further test needed) or
// a Branch (Test set, TrueChild for "Name == Test.Symbol", FalseChild
// otherwise). InfsV/InfsO are the Inferences discharged along the true
// and false edges respectively. Depth is 0 for a Leaf and for a Branch
// with no children, else 1 + max(child depths), an absent child
// contributing 0 (original_source/dtc.c nod_t, expressed as a Go struct instead of a
// C union distinguished by a nil field).
type Node struct {
	Test       *Value
	TrueChild  *Node
	FalseChild *Node
	InfsV      *Inferences
	InfsO      *Inferences
	Verdict    *Inferences
	Depth      int
}

// IsLeaf reports whether n has no test.
func (n *Node) IsLeaf() bool {
	return n.Test == nil
}

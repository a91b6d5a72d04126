// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"io"
	"strconv"
)

// Emit performs the spec.md §4.7 walk over root: it writes the I/O/D
// header records, then assigns labels lazily and deduplicates identical
// (result-value-sequence, DAG node) pairs at every branch target before
// writing the T/J/L/R pseudocode stream
// (original_source/dtc.c outNod/outBrn/outBrnLbl).
func Emit(w io.Writer, root *Node, independent []*Value, results []*Value) error {
	rw := newRecordWriter(w)

	for _, v := range independent {
		if err := rw.write("I", v.Nam.Sym.String(), v.Sym.String()); err != nil {
			return err
		}
	}
	for _, v := range results {
		if err := rw.write("O", v.Nam.Sym.String(), v.Sym.String()); err != nil {
			return err
		}
	}
	if err := rw.write("D", strconv.Itoa(root.Depth+1)); err != nil {
		return err
	}

	e := &emitter{rw: rw, next: 1}
	if err := e.walk(root); err != nil {
		return err
	}
	if err := rw.write("L", "0"); err != nil {
		return err
	}
	return rw.flush()
}

type labelEntry struct {
	infs *Inferences
	node *Node
	lbl  int
}

type emitter struct {
	rw      *recordWriter
	entries []labelEntry
	next    int
}

// branchLabel finds or reserves a label for the (infs, node) pair
// emitted at a branch target, reporting dup=true when that exact pair
// already has a label (original_source/dtc.c outCmp/outBrnLbl). Pairs
// are compared by their result-value sequence, not by the Inference
// objects' provenance, since two discharge sets resolving the same
// values in the same order are interchangeable at this target.
func (e *emitter) branchLabel(infs *Inferences, node *Node) (lbl int, dup bool) {
	for _, entry := range e.entries {
		if entry.node == node && sameResultSequence(entry.infs, infs) {
			return entry.lbl, true
		}
	}
	lbl = e.next
	e.next++
	e.entries = append(e.entries, labelEntry{infs: infs, node: node, lbl: lbl})
	return lbl, false
}

func sameResultSequence(a, b *Inferences) bool {
	an, bn := 0, 0
	if a != nil {
		an = a.Len()
	}
	if b != nil {
		bn = b.Len()
	}
	if an != bn {
		return false
	}
	for i := 0; i < an; i++ {
		if a.At(i).Result != b.At(i).Result {
			return false
		}
	}
	return true
}

// walk emits n's own content: a Leaf resolves its verdict Inferences
// and returns to the caller (J,0); a Branch emits its test, inlines the
// false branch, then emits the true branch under its own label
// (original_source/dtc.c outNod).
func (e *emitter) walk(n *Node) error {
	if n.IsLeaf() {
		if err := e.resolutions(n.Verdict); err != nil {
			return err
		}
		return e.rw.write("J", "0")
	}

	lbl, dup := e.branchLabel(n.InfsV, n.TrueChild)
	if err := e.rw.write("T", n.Test.Nam.Sym.String(), n.Test.Sym.String(), strconv.Itoa(lbl)); err != nil {
		return err
	}
	if err := e.branch(n.InfsO, n.FalseChild); err != nil {
		return err
	}
	if !dup {
		if err := e.rw.write("L", strconv.Itoa(lbl)); err != nil {
			return err
		}
		if err := e.branchContent(n.InfsV, n.TrueChild); err != nil {
			return err
		}
	}
	return nil
}

// branch emits one branch edge: a jump to its label if the (infs,
// child) pair was already emitted elsewhere, otherwise a fresh label
// followed by its content (original_source/dtc.c outBrn).
func (e *emitter) branch(infs *Inferences, child *Node) error {
	lbl, dup := e.branchLabel(infs, child)
	if dup {
		return e.rw.write("J", strconv.Itoa(lbl))
	}
	if err := e.rw.write("L", strconv.Itoa(lbl)); err != nil {
		return err
	}
	return e.branchContent(infs, child)
}

// branchContent resolves infs, then either jumps to program exit (a
// nil child means nothing more discharges this edge) or walks into the
// child node (original_source/dtc.c outBrnCon).
func (e *emitter) branchContent(infs *Inferences, child *Node) error {
	if err := e.resolutions(infs); err != nil {
		return err
	}
	if child == nil {
		return e.rw.write("J", "0")
	}
	return e.walk(child)
}

func (e *emitter) resolutions(infs *Inferences) error {
	if infs == nil {
		return nil
	}
	for i := 0; i < infs.Len(); i++ {
		inf := infs.At(i)
		if err := e.rw.write("R", inf.Result.Nam.Sym.String(), inf.Result.Sym.String()); err != nil {
			return err
		}
	}
	return nil
}

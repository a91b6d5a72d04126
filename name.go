// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "sort"

// Name is a decision variable (spec.md §3): a Symbol plus the sorted
// set of Values it is known to take. A Name must end up with at least
// two distinct Values (UnderSpecifiedName, spec.md §7).
type Name struct {
	Sym *Symbol
	v   []*Value
}

func newName(sym *Symbol) *Name {
	return &Name{Sym: sym}
}

// Cmp orders Names by their Symbol.
func (n *Name) Cmp(o *Name) int {
	return n.Sym.Cmp(o.Sym)
}

// Values returns n's Values in canonical order.
func (n *Name) Values() []*Value {
	return n.v
}

// addValue interns sym as a Value of n, returning the canonical
// *Value whether newly created or already present
// (original_source/dtc.c valsAdd, specialized to one Name's vector).
func (n *Name) addValue(sym *Symbol) *Value {
	i := sort.Search(len(n.v), func(i int) bool {
		return n.v[i].Sym.Cmp(sym) >= 0
	})
	if i < len(n.v) && n.v[i].Sym == sym {
		return n.v[i]
	}
	val := &Value{Nam: n, Sym: sym}
	n.v = append(n.v, nil)
	copy(n.v[i+1:], n.v[i:])
	n.v[i] = val
	return val
}

// Names is the sorted set of every Name discovered during ingest.
type Names struct {
	v []*Name
}

// Len reports how many Names are in the set.
func (ns *Names) Len() int { return len(ns.v) }

// At returns the i'th Name in canonical order.
func (ns *Names) At(i int) *Name { return ns.v[i] }

// All returns every Name in canonical order.
func (ns *Names) All() []*Name { return ns.v }

// find locates the Name interning sym, if any.
func (ns *Names) find(sym *Symbol) (*Name, bool) {
	i := sort.Search(len(ns.v), func(i int) bool {
		return ns.v[i].Sym.Cmp(sym) >= 0
	})
	if i < len(ns.v) && ns.v[i].Sym == sym {
		return ns.v[i], true
	}
	return nil, false
}

// add inserts nam in sorted order, returning the canonical entry.
func (ns *Names) add(nam *Name) *Name {
	i := sort.Search(len(ns.v), func(i int) bool {
		return ns.v[i].Sym.Cmp(nam.Sym) >= 0
	})
	if i < len(ns.v) && ns.v[i].Sym == nam.Sym {
		return ns.v[i]
	}
	ns.v = append(ns.v, nil)
	copy(ns.v[i+1:], ns.v[i:])
	ns.v[i] = nam
	return nam
}

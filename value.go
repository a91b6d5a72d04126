// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "sort"

// Value is one concrete assignment of a Name (spec.md §3): a (Name,
// Symbol) pair. infs is populated only for independent Values
// (spec.md §4.3): the transitive fire-set of inferences this Value's
// presence discharges.
type Value struct {
	Nam  *Name
	Sym  *Symbol
	infs *Inferences
}

// String renders "name=value", used in diagnostics.
func (v *Value) String() string {
	return v.Nam.Sym.String() + "=" + v.Sym.String()
}

// Cmp orders Values by Name first, then by Symbol within the Name
// (original_source/dtc.c val_t ordering).
func (v *Value) Cmp(o *Value) int {
	if c := v.Nam.Cmp(o.Nam); c != 0 {
		return c
	}
	return v.Sym.Cmp(o.Sym)
}

// Values is a sorted set of Values, built with binary-search insertion
// (original_source/dtc.c vals_t/valsAdd).
type Values struct {
	v []*Value
}

func newValues(capacity int) *Values {
	return &Values{v: make([]*Value, 0, capacity)}
}

// Len reports how many Values are in the set.
func (vs *Values) Len() int { return len(vs.v) }

// At returns the i'th Value in canonical order.
func (vs *Values) At(i int) *Value { return vs.v[i] }

// All returns every Value in canonical order.
func (vs *Values) All() []*Value { return vs.v }

func (vs *Values) search(val *Value) (int, bool) {
	i := sort.Search(len(vs.v), func(i int) bool {
		return vs.v[i].Cmp(val) >= 0
	})
	return i, i < len(vs.v) && vs.v[i] == val
}

// contains reports whether val is a member of vs.
func (vs *Values) contains(val *Value) bool {
	_, ok := vs.search(val)
	return ok
}

// add inserts val in sorted order if absent, returning true if it was
// newly added.
func (vs *Values) add(val *Value) bool {
	i, ok := vs.search(val)
	if ok {
		return false
	}
	vs.v = append(vs.v, nil)
	copy(vs.v[i+1:], vs.v[i:])
	vs.v[i] = val
	return true
}

// clone returns a shallow, independent copy of vs.
func (vs *Values) clone() *Values {
	c := newValues(len(vs.v))
	c.v = append(c.v, vs.v...)
	return c
}

// Cmp gives a structural ordering over Values sets, used as part of the
// build cache's key equality (spec.md §9 content-addressed cache).
func (vs *Values) Cmp(o *Values) int {
	n := len(vs.v)
	if len(o.v) < n {
		n = len(o.v)
	}
	for i := 0; i < n; i++ {
		if c := vs.v[i].Cmp(o.v[i]); c != 0 {
			return c
		}
	}
	return len(vs.v) - len(o.v)
}

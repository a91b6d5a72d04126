// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "sort"

// Inference is one decision-table row (spec.md §3): a result Value
// determined by a premise set of other Values, plus the file/row it was
// read from for diagnostics.
type Inference struct {
	Result  *Value
	Premise *Values
	File    string
	Row     int
}

// Cmp orders Inferences by result Value first, then by their premise
// set (original_source/dtc.c infCmp): this is the order the build
// cache and the emitter's dedup both rely on.
func (inf *Inference) Cmp(o *Inference) int {
	if c := inf.Result.Cmp(o.Result); c != 0 {
		return c
	}
	return inf.Premise.Cmp(o.Premise)
}

// cmpByResultValue compares inf only by its result Value, letting
// Inferences support a partial-key binary search for "does some
// inference resolve val" queries (original_source/dtc.c
// infsValSchCmp): entries that share a result Value are contiguous
// under the full Cmp order, so searching on the prefix key alone is
// sound.
func (inf *Inference) cmpByResultValue(val *Value) int {
	return inf.Result.Cmp(val)
}

// Inferences is the sorted set of every Inference in a Fact Graph, or a
// derived subset (a fire-set, a discharge set, an undischarged
// residual). Built with binary-search insertion
// (original_source/dtc.c infs_t/infsAdd).
type Inferences struct {
	v []*Inference
}

func newInferences() *Inferences {
	return &Inferences{}
}

// Len reports how many Inferences are in the set.
func (infs *Inferences) Len() int { return len(infs.v) }

// At returns the i'th Inference in canonical order.
func (infs *Inferences) At(i int) *Inference { return infs.v[i] }

// All returns every Inference in canonical order.
func (infs *Inferences) All() []*Inference { return infs.v }

func (infs *Inferences) search(inf *Inference) (int, bool) {
	i := sort.Search(len(infs.v), func(i int) bool {
		return infs.v[i].Cmp(inf) >= 0
	})
	return i, i < len(infs.v) && infs.v[i] == inf
}

// add inserts inf in sorted order. It reports (inf, true) on a fresh
// insert, or the pre-existing entry and false if an Inference with the
// same Cmp key (same result, same premises) is already present — the
// Ingestor treats false as a fatal duplicate-inference error
// (spec.md §4.2/§7).
func (infs *Inferences) add(inf *Inference) (*Inference, bool) {
	i := sort.Search(len(infs.v), func(i int) bool {
		return infs.v[i].Cmp(inf) >= 0
	})
	if i < len(infs.v) && infs.v[i].Cmp(inf) == 0 {
		return infs.v[i], false
	}
	infs.v = append(infs.v, nil)
	copy(infs.v[i+1:], infs.v[i:])
	infs.v[i] = inf
	return inf, true
}

// clone returns a shallow, independent copy of infs.
func (infs *Inferences) clone() *Inferences {
	c := &Inferences{v: append([]*Inference(nil), infs.v...)}
	return c
}

// Cmp gives a structural ordering over Inference sets, used by the
// build cache's key equality.
func (infs *Inferences) Cmp(o *Inferences) int {
	n := len(infs.v)
	if len(o.v) < n {
		n = len(o.v)
	}
	for i := 0; i < n; i++ {
		if c := infs.v[i].Cmp(o.v[i]); c != 0 {
			return c
		}
	}
	return len(infs.v) - len(o.v)
}

// minus returns the sorted-merge set difference infs \ other
// (original_source/dtc.c infsMnsInfs).
func (infs *Inferences) minus(other *Inferences) *Inferences {
	if other == nil || other.Len() == 0 {
		return infs
	}
	r := newInferences()
	i, j := 0, 0
	for i < len(infs.v) {
		if j >= len(other.v) {
			r.v = append(r.v, infs.v[i:]...)
			break
		}
		c := infs.v[i].Cmp(other.v[j])
		switch {
		case c < 0:
			r.v = append(r.v, infs.v[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return r
}

// strip removes entries of infs whose result is already resolved in
// other, or whose premises conflict with a value already resolved (for
// the same Name, to a different Value) in other
// (original_source/dtc.c infsSrpInfs).
func (infs *Inferences) strip(other *Inferences) *Inferences {
	r := newInferences()
outer:
	for _, inf := range infs.v {
		if other.hasResultValue(inf.Result) {
			continue
		}
		for _, p := range inf.Premise.All() {
			for _, e := range other.v {
				if e.Result != p && e.Result.Nam == p.Nam {
					continue outer
				}
			}
		}
		r.v = append(r.v, inf)
	}
	return r
}

// hasResultValue reports whether some Inference in infs resolves val,
// via a partial-key binary search on the result-Value prefix of the
// canonical (result, premises) order (original_source/dtc.c bsearch +
// infsValSchCmp).
func (infs *Inferences) hasResultValue(val *Value) bool {
	i := sort.Search(len(infs.v), func(i int) bool {
		return infs.v[i].cmpByResultValue(val) >= 0
	})
	return i < len(infs.v) && infs.v[i].Result == val
}

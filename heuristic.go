// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "sort"

// orderCandidates sorts vals' candidates by the search heuristic
// (spec.md §4.4): primary balance |A-B| (minimize), secondary delay
// min(A,B) (maximize), ties broken by canonical Value order
// (original_source/dtc.c valsInfsCmp).
func orderCandidates(vals *Values) []*Value {
	vs := append([]*Value(nil), vals.All()...)
	sort.Slice(vs, func(i, j int) bool {
		return cmpCandidate(vs[i], vs[j]) < 0
	})
	return vs
}

func cmpCandidate(a, b *Value) int {
	aFire, aRest := fireCounts(a)
	bFire, bRest := fireCounts(b)
	if ab, bb := balance(aFire, aRest), balance(bFire, bRest); ab != bb {
		if ab < bb {
			return -1
		}
		return 1
	}
	if ad, bd := delay(aFire, aRest), delay(bFire, bRest); ad != bd {
		if ad > bd {
			return -1
		}
		return 1
	}
	return a.Cmp(b)
}

// fireCounts returns the size of v's own fire-set and the combined size
// of every other value of v's Name's fire-set.
func fireCounts(v *Value) (own, rest int) {
	own = v.infs.Len()
	for _, peer := range v.Nam.Values() {
		if peer != v {
			rest += peer.infs.Len()
		}
	}
	return
}

func balance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func delay(a, b int) int {
	if a < b {
		return a
	}
	return b
}

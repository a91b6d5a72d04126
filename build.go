// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// builder runs the DAG Builder search (spec.md §4.5): a memoized
// branch-and-bound recursion over (candidateValues,
// undischargedInferences) subproblems, sharing subgraphs through
// buildCache (original_source/dtc.c nodBld).
type builder struct {
	cache   *buildCache
	quick   bool
	trace   bool
	maxCand int
}

func newBuilder(opts *options) *builder {
	return &builder{cache: newBuildCache(), quick: opts.quick, trace: opts.trace, maxCand: opts.maxCandidates}
}

// Build runs the search over the full independent-value candidate set
// and the full Inference set, returning the root Node.
func (b *builder) Build(vals *Values, infs *Inferences) (*Node, error) {
	root, err := b.build(vals, infs, vals.Len())
	b.cache.logStats(b.trace)
	return root, err
}

func (b *builder) build(vals *Values, infs *Inferences, bd int) (*Node, error) {
	if node, ok := b.cache.find(vals, infs); ok {
		return node, nil
	}
	if vals.Len() > b.maxCand {
		return nil, &OomError{Reason: "candidate set exceeds the configured limit"}
	}
	traceSearch(b.trace, bd, vals.Len(), "")

	var best *Node

	for _, v := range orderCandidates(vals) {
		traceSearch(b.trace, bd, vals.Len(), v.Nam.Sym.String()+"="+v.Sym.String())
		cand := &Node{Test: v}

		nV := resolvedByTesting(vals, infs, v)
		if nV.Len() > 0 {
			expandSingleDependency(nV, infs)
			cand.InfsV = nV
		}
		nO := resolvedByTestingPeers(vals, infs, v)
		if nO.Len() > 0 {
			expandSingleDependency(nO, infs)
			cand.InfsO = nO
		}

		residualTrue := infs
		for _, peer := range v.Nam.Values() {
			if peer == v {
				continue
			}
			residualTrue = residualTrue.minus(peer.infs)
		}
		residualFalse := infs.minus(v.infs)

		if residualTrue.Len() > 0 && cand.InfsV != nil {
			residualTrue = residualTrue.strip(cand.InfsV)
		}
		if residualFalse.Len() > 0 && cand.InfsO != nil {
			residualFalse = residualFalse.strip(cand.InfsO)
		}

		var fV, fO *Values
		if residualTrue.Len() > 0 {
			fV = candidatesExcludingName(vals, v, residualTrue)
		}
		if residualFalse.Len() > 0 {
			fO = candidatesExcludingValue(vals, v, residualFalse)
		}

		if (fV != nil && fV.Len() == 0) || (fO != nil && fO.Len() == 0) {
			continue
		}

		if fV != nil {
			child, err := b.build(fV, residualTrue, bd)
			if err != nil {
				return nil, err
			}
			cand.TrueChild = child
		}
		if fO != nil {
			child, err := b.build(fO, residualFalse, bd)
			if err != nil {
				return nil, err
			}
			cand.FalseChild = child
		}

		if cand.TrueChild != nil || cand.FalseChild != nil {
			switch {
			case cand.TrueChild != nil && cand.FalseChild != nil &&
				!cand.TrueChild.IsLeaf() && !cand.FalseChild.IsLeaf():
				cand.Depth = 1 + max(cand.TrueChild.Depth, cand.FalseChild.Depth)
			case cand.FalseChild == nil && cand.TrueChild != nil && !cand.TrueChild.IsLeaf():
				cand.Depth = 1 + cand.TrueChild.Depth
			case cand.TrueChild == nil && cand.FalseChild != nil && !cand.FalseChild.IsLeaf():
				cand.Depth = 1 + cand.FalseChild.Depth
			default:
				continue
			}
		}

		if cand.Depth > bd {
			continue
		}
		if best == nil || cand.Depth < best.Depth {
			best = cand
			if b.quick || best.Depth == 0 {
				break
			}
			bd = best.Depth
			traceSearch(b.trace, bd, vals.Len(), "tightened bound")
		}
	}

	if best == nil {
		best = &Node{Verdict: infs.clone()}
	}
	b.cache.install(vals, infs, best)
	return best, nil
}

// expandSingleDependency grows acc to a fixed point by chasing
// single-premise Inferences in pool reachable from each member's result
// Value (original_source/dtc.c infsValTrnAdd; analyze.go's fire runs
// its own loop of the same kind). acc.Len() is re-read every iteration, so newly
// discovered entries are themselves expanded.
func expandSingleDependency(acc *Inferences, pool *Inferences) {
	for i := 0; i < acc.Len(); i++ {
		result := acc.At(i).Result
		for _, inf := range pool.All() {
			if inf.Premise.Len() == 1 && inf.Premise.At(0) == result {
				acc.add(inf)
			}
		}
	}
}

// resolvedByTesting returns the Inferences among infs that testing val
// alone discharges: members of val's own fire-set whose every other
// premise is already pinned down (not a live candidate in vals, and not
// itself blocked on a still-open candidate) (original_source/dtc.c
// infsResVal).
func resolvedByTesting(vals *Values, infs *Inferences, val *Value) *Inferences {
	r := newInferences()
	fireSet := val.infs
	if fireSet == nil {
		return r
	}
	i, j := 0, 0
	for i < infs.Len() && j < fireSet.Len() {
		switch c := infs.At(i).Cmp(fireSet.At(j)); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			inf := infs.At(i)
			if premisesSettled(inf, val, vals, infs) {
				r.add(inf)
			}
			i++
			j++
		}
	}
	return r
}

func premisesSettled(inf *Inference, val *Value, vals *Values, infs *Inferences) bool {
	for _, p := range inf.Premise.All() {
		if p == val {
			continue
		}
		if vals.contains(p) {
			return false
		}
		for _, m := range infs.All() {
			if m.Result != p {
				continue
			}
			for _, q := range m.Premise.All() {
				if vals.contains(q) {
					return false
				}
			}
		}
	}
	return true
}

// resolvedByTestingPeers is the false-branch analogue of
// resolvedByTesting: it folds resolvedByTesting over every still-open
// peer value of val's Name in turn, narrowing through each call (the
// previous peer's result becomes the next call's infs argument rather
// than an independent union) (original_source/dtc.c infsResValNam).
func resolvedByTestingPeers(vals *Values, infs *Inferences, val *Value) *Inferences {
	r := infs
	seen := false
	for _, peer := range val.Nam.Values() {
		if peer == val || !vals.contains(peer) {
			continue
		}
		r = resolvedByTesting(vals, r, peer)
		seen = true
	}
	if !seen {
		return newInferences()
	}
	return r
}

// candidatesExcludingName is the true-branch candidate filter: drop
// every Value of val's Name (it is now fully determined), and keep
// every other candidate only if some remaining Inference still
// references it (original_source/dtc.c valsSubValNam).
func candidatesExcludingName(vals *Values, val *Value, infs *Inferences) *Values {
	r := newValues(vals.Len())
	for _, v := range vals.All() {
		if v.Nam == val.Nam {
			continue
		}
		if referencedByAny(v, infs) {
			r.add(v)
		}
	}
	return r
}

// candidatesExcludingValue is the false-branch candidate filter: drop
// only val itself, keeping its peers as live candidates unless exactly
// one referenced peer remains (in which case that peer's value is
// already implied, so the whole Name is dropped)
// (original_source/dtc.c valsSubVal).
func candidatesExcludingValue(vals *Values, val *Value, infs *Inferences) *Values {
	r := newValues(vals.Len())
	samePeerCount := 0
	for _, v := range vals.All() {
		if v == val {
			continue
		}
		if referencedByAny(v, infs) {
			r.add(v)
			if v.Nam == val.Nam {
				samePeerCount++
			}
		}
	}
	if samePeerCount == 1 {
		filtered := newValues(r.Len())
		for _, v := range r.All() {
			if v.Nam != val.Nam {
				filtered.add(v)
			}
		}
		r = filtered
	}
	return r
}

func referencedByAny(v *Value, infs *Inferences) bool {
	for _, inf := range infs.All() {
		if inf.Premise.contains(v) {
			return true
		}
	}
	return false
}

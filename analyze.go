// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// Independent computes the Dependency Analyzer's independent-value set
// (spec.md §4.3): every Value that is not the result of any Inference.
// It attaches each independent Value's fire-set (fire, below) as a
// back-reference, and rejects a Name that is only partially independent
// (some Values independent, others not) with PartiallyIndependentError,
// and an input with no independent values at all with
// NoIndependentValuesError (original_source/dtc.c namsInd).
func Independent(names *Names, infs *Inferences) (*Values, error) {
	ind := newValues(0)
	for _, nam := range names.All() {
		for _, val := range nam.Values() {
			if !infs.hasResultValue(val) {
				ind.add(val)
			}
		}
	}
	if ind.Len() == 0 {
		return nil, &NoIndependentValuesError{}
	}
	for i := 0; i < ind.Len(); i++ {
		val := ind.At(i)
		val.infs = fire(val, infs)
	}
	for i := 0; i < ind.Len(); i++ {
		nam := ind.At(i).Nam
		for _, peer := range nam.Values() {
			if peer.infs == nil {
				return nil, &PartiallyIndependentError{Name: nam.Sym.String(), Value: peer.Sym.String()}
			}
		}
	}
	return ind, nil
}

// fire computes val's transitive reachability closure (spec.md §4.3,
// §9 Q1). It composes two passes exactly as
// original_source/dtc.c's infsVal and infsValTrnAdd do: first every
// Inference with val among its premises, any premise count
// (the direct hits), then a fixed-point expansion along chains of
// single-premise Inferences only, seeded from val itself.
func fire(val *Value, infs *Inferences) *Inferences {
	r := newInferences()
	for _, inf := range infs.All() {
		if inf.Premise.contains(val) {
			r.add(inf)
		}
	}

	frontier := newValues(1)
	frontier.add(val)
	for frontier.Len() > 0 {
		next := newValues(0)
		for _, v := range frontier.All() {
			for _, inf := range infs.All() {
				if inf.Premise.Len() == 1 && inf.Premise.At(0) == v {
					r.add(inf)
					next.add(inf.Result)
				}
			}
		}
		frontier = next
	}
	return r
}

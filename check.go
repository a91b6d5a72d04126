// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// Check walks the built DAG once, verifying that no Node's discharged
// or verdict Inferences ever resolve the same Name to two different
// Values (spec.md §4.6). It is the only place a ContradictionError is
// raised (original_source/dtc.c infsChk/nodChk).
func Check(n *Node) error {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return checkInfs(n.Verdict)
	}
	if err := checkInfs(n.InfsV); err != nil {
		return err
	}
	if err := checkInfs(n.InfsO); err != nil {
		return err
	}
	if err := Check(n.TrueChild); err != nil {
		return err
	}
	return Check(n.FalseChild)
}

func checkInfs(infs *Inferences) error {
	if infs == nil {
		return nil
	}
	for i := 0; i < infs.Len(); i++ {
		a := infs.At(i)
		for j := i + 1; j < infs.Len(); j++ {
			b := infs.At(j)
			if a.Result.Nam == b.Result.Nam && a.Result != b.Result {
				return &ContradictionError{
					Name: a.Result.Nam.Sym.String(),
					A:    InferenceRef{Value: a.Result.Sym.String(), Loc: Location{File: a.File, Row: a.Row}},
					B:    InferenceRef{Value: b.Result.Sym.String(), Loc: Location{File: b.File, Row: b.Row}},
				}
			}
		}
	}
	return nil
}

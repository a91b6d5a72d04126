// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"bytes"
	"sort"
)

// Symbol is an interned, canonically ordered byte string: the shared
// spelling behind every Name and Value. Interning means two identical
// spellings always resolve to the same *Symbol, so identity comparison
// (==) stands in for content comparison everywhere else in the package
// (original_source/dtc.c sym_t/symCmp/symsAdd).
type Symbol struct {
	b []byte
}

// String returns the symbol's spelling.
func (s *Symbol) String() string {
	return string(s.b)
}

// Cmp orders symbols lexicographically by byte content, shorter before
// longer on a shared prefix.
func (s *Symbol) Cmp(o *Symbol) int {
	return cmpBytes(s.b, o.b)
}

func cmpBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if c := bytes.Compare(a[:n], b[:n]); c != 0 {
		return c
	}
	return len(a) - len(b)
}

// Pool is the Symbol Pool (spec.md §3): the single sorted vector of
// every distinct byte string seen during ingest, built with
// binary-search insertion the way original_source/dtc.c's symsAdd
// grows syms_t.
type Pool struct {
	syms []*Symbol
}

// NewPool returns an empty Symbol Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Intern returns the canonical *Symbol for v, allocating and inserting
// a new one only on first sight.
func (p *Pool) Intern(v []byte) *Symbol {
	i := sort.Search(len(p.syms), func(i int) bool {
		return cmpBytes(p.syms[i].b, v) >= 0
	})
	if i < len(p.syms) && cmpBytes(p.syms[i].b, v) == 0 {
		return p.syms[i]
	}
	sym := &Symbol{b: append([]byte(nil), v...)}
	p.syms = append(p.syms, nil)
	copy(p.syms[i+1:], p.syms[i:])
	p.syms[i] = sym
	return sym
}

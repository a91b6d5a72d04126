// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package dtc

import "hash/maphash"

// buildKey is the structural key for one DAG Builder subproblem
// (spec.md §4.5): a (candidateValues, undischargedInferences) pair,
// compared by content rather than by pointer.
type buildKey struct {
	vals *Values
	infs *Inferences
}

type cacheEntry struct {
	key  buildKey
	node *Node
}

// cacheStat stores hit/miss counters about build-cache usage, reported
// over slog when compiled with the debug build tag (debug.go) and
// tracing is on.
type cacheStat struct {
	hits   int
	misses int
}

// buildCache memoizes DAG Builder subproblems the way rudd's cache
// memoizes Apply/ITE results, except keyed on a content hash of sorted
// value/inference sets rather than a fixed operand triple (spec.md §9:
// "a content-addressed interning map keyed on the same
// (candidateValues, undischargedInferences) pair"), replacing
// original_source/dtc.c's blds_t sorted vector + bldsFnd binary search.
type buildCache struct {
	seed    maphash.Seed
	entries map[uint64][]cacheEntry
	stat    cacheStat
}

func newBuildCache() *buildCache {
	return &buildCache{seed: maphash.MakeSeed(), entries: make(map[uint64][]cacheEntry)}
}

func (c *buildCache) digest(vals *Values, infs *Inferences) uint64 {
	var h maphash.Hash
	h.SetSeed(c.seed)
	for _, v := range vals.All() {
		h.WriteString(v.Nam.Sym.String())
		h.WriteByte(0)
		h.WriteString(v.Sym.String())
		h.WriteByte(1)
	}
	h.WriteByte(2)
	for _, inf := range infs.All() {
		h.WriteString(inf.Result.Nam.Sym.String())
		h.WriteByte(0)
		h.WriteString(inf.Result.Sym.String())
		h.WriteByte(1)
		for _, p := range inf.Premise.All() {
			h.WriteString(p.Nam.Sym.String())
			h.WriteByte(0)
			h.WriteString(p.Sym.String())
			h.WriteByte(1)
		}
		h.WriteByte(3)
	}
	return h.Sum64()
}

// find returns the memoized Node for (vals, infs), if any.
func (c *buildCache) find(vals *Values, infs *Inferences) (*Node, bool) {
	d := c.digest(vals, infs)
	for _, e := range c.entries[d] {
		if e.key.vals.Cmp(vals) == 0 && e.key.infs.Cmp(infs) == 0 {
			c.stat.hits++
			return e.node, true
		}
	}
	c.stat.misses++
	return nil, false
}

// install memoizes node under the (vals, infs) key.
func (c *buildCache) install(vals *Values, infs *Inferences, node *Node) {
	d := c.digest(vals, infs)
	c.entries[d] = append(c.entries[d], cacheEntry{key: buildKey{vals: vals, infs: infs}, node: node})
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// binaryKey is the normalized cache key for a commutative binary operator:
// the unordered pair {lhs, rhs}, stored with the smaller identifier first so
// that AND(a,b) and AND(b,a) hit the same entry, per the operator-cache
// consistency invariant.
type binaryKey struct {
	lo, hi NodeID
}

func makeBinaryKey(a, b NodeID) binaryKey {
	if a <= b {
		return binaryKey{lo: a, hi: b}
	}
	return binaryKey{lo: b, hi: a}
}

// operatorCache memoizes a single commutative binary operator (AND or OR)
// over a pair of node identifiers. Each operator owns its own cache: plain
// functions over the engine, with the cache living alongside rather than
// inside an operator object.
type operatorCache struct {
	hits, misses int
	table        *lru.Cache[binaryKey, NodeID]
}

func newOperatorCache(size int) *operatorCache {
	c, err := lru.New[binaryKey, NodeID](size)
	if err != nil {
		// size is always validated positive by makeconfigs/WithCacheSize.
		panic(err)
	}
	return &operatorCache{table: c}
}

func (oc *operatorCache) get(a, b NodeID) (NodeID, bool) {
	v, ok := oc.table.Get(makeBinaryKey(a, b))
	if ok {
		oc.hits++
	} else {
		oc.misses++
	}
	return v, ok
}

func (oc *operatorCache) put(a, b NodeID, result NodeID) {
	oc.table.Add(makeBinaryKey(a, b), result)
}

// iteKey is the cache key for the ternary ITE operator. ITE is not
// commutative in any of its arguments, so no normalization is applied.
type iteKey struct {
	f, g, h NodeID
}

type iteCache struct {
	hits, misses int
	table        *lru.Cache[iteKey, NodeID]
}

func newITECache(size int) *iteCache {
	c, err := lru.New[iteKey, NodeID](size)
	if err != nil {
		panic(err)
	}
	return &iteCache{table: c}
}

func (ic *iteCache) get(f, g, h NodeID) (NodeID, bool) {
	v, ok := ic.table.Get(iteKey{f: f, g: g, h: h})
	if ok {
		ic.hits++
	} else {
		ic.misses++
	}
	return v, ok
}

func (ic *iteCache) put(f, g, h NodeID, result NodeID) {
	ic.table.Add(iteKey{f: f, g: g, h: h}, result)
}

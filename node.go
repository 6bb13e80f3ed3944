// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"sync"

	"go.uber.org/zap"
)

// NodeID names a node owned by some Engine: either a terminal, carrying its
// own non-negative integer value, or a nonterminal, encoded as a negative
// index into the engine's node table (index = -id-1). This mirrors the
// on-disk "serialized ID" convention directly: terminals are non-negative
// values, nonterminals are negative handles assigned in allocation order.
// The encoding is internal; nothing outside this package should depend on
// the numeric value of a NodeID beyond equality.
type NodeID int32

// IsTerminal reports whether id names a terminal node.
func (id NodeID) IsTerminal() bool {
	return id >= 0
}

func nodeIndex(id NodeID) int {
	return int(-id) - 1
}

func indexNode(index int) NodeID {
	return NodeID(-(index + 1))
}

// bddNode is a nonterminal triple (variable, low, high).
type bddNode struct {
	variable uint8
	low      NodeID
	high     NodeID
}

type bddKey struct {
	variable uint8
	low      NodeID
	high     NodeID
}

// Engine owns a hash-consed node store and the operator caches that memoize
// AND, OR and ITE over it. Nodes allocated by an engine live as long as the
// engine does; there is no reference counting and no garbage collection of
// individual nodes (see the package doc for why). A zero Engine is not
// usable; construct one with New.
type Engine struct {
	mu     sync.RWMutex
	nodes  []bddNode
	unique map[bddKey]NodeID

	and *operatorCache
	or  *operatorCache
	ite *iteCache

	log    *zap.Logger
	closed bool
}

// New creates a ready-to-use Engine. Call Teardown when done; there is no
// finalizer, so a leaked Engine leaks its node table.
func New(opts ...Option) *Engine {
	c := makeconfigs()
	for _, opt := range opts {
		opt(c)
	}

	e := &Engine{
		nodes:  make([]bddNode, 0, c.nodeCapacity),
		unique: make(map[bddKey]NodeID, c.nodeCapacity),
		log:    c.logger,
	}
	e.and = newOperatorCache(c.cacheSize)
	e.or = newOperatorCache(c.cacheSize)
	e.ite = newITECache(c.cacheSize)
	e.logger().Debug("engine created",
		zap.Int("node_capacity", c.nodeCapacity),
		zap.Int("cache_size", c.cacheSize),
	)
	return e
}

// Teardown releases the engine's node table and caches. Every Node and Set
// sourced from this engine becomes invalid; using one afterwards is a
// programming error (see the error handling design: this is undefined
// behavior, not a reported failure).
func (e *Engine) Teardown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger().Debug("engine torn down", zap.Int("nodes", len(e.nodes)))
	e.nodes = nil
	e.unique = nil
	e.and = nil
	e.or = nil
	e.ite = nil
	e.closed = true
}

func (e *Engine) checkOpen() {
	if e.closed {
		panic(ErrClosed)
	}
}

// terminal returns the canonical identifier for a terminal carrying value.
// Pure and allocation-free: terminals ARE their value under this encoding.
func (e *Engine) terminal(value int) NodeID {
	return NodeID(value)
}

func (e *Engine) isTerminalValue(id NodeID, value int) bool {
	return id.IsTerminal() && int(id) == value
}

// terminalValue returns the value carried by a terminal node. The caller
// must know id is terminal; calling this on a nonterminal is a programming
// error per the error handling design.
func (e *Engine) terminalValue(id NodeID) int {
	if !id.IsTerminal() {
		panic("ipbdd: terminalValue called on a nonterminal node")
	}
	return int(id)
}

// node returns the (variable, low, high) triple of a nonterminal.
func (e *Engine) node(id NodeID) (variable uint8, low, high NodeID) {
	n := e.nodes[nodeIndex(id)]
	return n.variable, n.low, n.high
}

// nonterminal returns the canonical identifier for (variable, low, high),
// applying the reducedness rule and hash-consing lookup described in the
// node store design: if low == high the node is elided and that child is
// returned directly; otherwise an existing node is reused or a new one is
// allocated.
func (e *Engine) nonterminal(variable uint8, low, high NodeID) NodeID {
	if low == high {
		return low
	}
	key := bddKey{variable: variable, low: low, high: high}
	if id, ok := e.unique[key]; ok {
		return id
	}
	e.nodes = append(e.nodes, bddNode{variable: variable, low: low, high: high})
	id := indexNode(len(e.nodes) - 1)
	e.unique[key] = id
	return id
}

// reachableCount performs a DFS from id, counting each distinct reachable
// nonterminal once. Terminals contribute zero.
func (e *Engine) reachableCount(id NodeID) int {
	if id.IsTerminal() {
		return 0
	}
	seen := make(map[NodeID]struct{})
	var walk func(NodeID)
	walk = func(n NodeID) {
		if n.IsTerminal() {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		_, low, high := e.node(n)
		walk(low)
		walk(high)
	}
	walk(id)
	return len(seen)
}

// perNodeBytes is the implementation-defined constant used by memorySize.
// It approximates the footprint of a single nonterminal entry: one uint8
// variable plus two 4-byte node identifiers, rounded up for map/slice
// overhead. It is a hint, not a guarantee; reachableCount is the normative
// metric.
const perNodeBytes = 24

// memorySize estimates the memory footprint of the subtree rooted at id.
func (e *Engine) memorySize(id NodeID) int {
	return e.reachableCount(id) * perNodeBytes
}

// Stats reports a human-readable summary of the engine's node table and
// operator cache occupancy, mirroring the diagnostic surface of the BuDDy
// lineage this engine descends from.
func (e *Engine) Stats() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return statsString(e)
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "net/netip"

// Set is an immutable-by-sharing set of IPv4 and IPv6 addresses and CIDR
// networks, represented as a single BDD root over the shared address-family
// and address-bit variable ordering (see addr.go). A Set is a cheap value:
// just a root identifier and a borrowed Engine reference. Copying a Set
// copies the root, not the underlying nodes.
type Set struct {
	engine *Engine
	root   NodeID
}

// NewSet returns an empty set rooted at the engine's canonical false
// terminal.
func NewSet(e *Engine) *Set {
	e.checkOpen()
	return &Set{engine: e, root: e.terminal(0)}
}

// Root returns the set's underlying node identifier, primarily useful for
// serialization and for composing sets with engine-level operators
// directly.
func (s *Set) Root() NodeID {
	return s.root
}

// fromRoot wraps an existing node identifier as a Set sharing e's engine,
// without any validation that id was actually produced by e. Used by Load.
func fromRoot(e *Engine, id NodeID) *Set {
	return &Set{engine: e, root: id}
}

// buildChain constructs a linear BDD for the prefix of length netmask
// within addr: starting from the true terminal, walk the constrained bits
// from the least significant back to the most significant, building one
// nonterminal per bit.
func buildChain(e *Engine, addr []byte, netmask int) NodeID {
	result := e.terminal(1)
	falseNode := e.terminal(0)
	for i := netmask; i >= 1; i-- {
		variable := addressVariable(i - 1)
		if bitAt(addr, i-1) {
			result = e.nonterminal(variable, falseNode, result)
		} else {
			result = e.nonterminal(variable, result, falseNode)
		}
	}
	return result
}

// wrapFamily prepends the family discriminator to a chain built over
// either the IPv4 or the IPv6 address space.
func wrapFamily(e *Engine, chain NodeID, isV4 bool) NodeID {
	falseNode := e.terminal(0)
	if isV4 {
		return e.nonterminal(familyVariable, falseNode, chain)
	}
	return e.nonterminal(familyVariable, chain, falseNode)
}

// addPrefix validates the netmask, builds the family-wrapped chain BDD for
// (addr, netmask) and ORs it into the set's root. An invalid netmask (≤0 or
// beyond the family's bit width) is documented, not an error, as a no-op
// that reports "already present".
func (s *Set) addPrefix(addr []byte, netmask, maxBits int, isV4 bool) bool {
	e := s.engine
	if netmask <= 0 || netmask > maxBits {
		return true
	}
	chain := buildChain(e, addr, netmask)
	prefix := wrapFamily(e, chain, isV4)
	newRoot := e.Or(s.root, prefix)
	alreadyPresent := newRoot == s.root
	s.root = newRoot
	return alreadyPresent
}

// AddV4 adds the IPv4 network addr/netmask to the set. addr must be a
// 4-byte big-endian address. It returns true if the network was already a
// subset of the set, in which case adding it again is a no-op.
func (s *Set) AddV4(addr [4]byte, netmask int) bool {
	s.engine.checkOpen()
	return s.addPrefix(addr[:], netmask, MaxIPv4Bits, true)
}

// AddV6 adds the IPv6 network addr/netmask to the set. addr must be a
// 16-byte big-endian address.
func (s *Set) AddV6(addr [16]byte, netmask int) bool {
	s.engine.checkOpen()
	return s.addPrefix(addr[:], netmask, MaxIPv6Bits, false)
}

// Add adds the network described by prefix to the set, dispatching to
// AddV4 or AddV6 based on the address family of prefix.Addr().
func (s *Set) Add(prefix netip.Prefix) (alreadyPresent bool, err error) {
	s.engine.checkOpen()
	b, maxBits, err := addrBytes(prefix.Addr())
	if err != nil {
		return false, err
	}
	isV4 := maxBits == MaxIPv4Bits
	return s.addPrefix(b, prefix.Bits(), maxBits, isV4), nil
}

// oracle builds the bit source used to evaluate a root against a concrete
// address: variable 0 reports the address family, variable i (1-based)
// reports bit i-1 of addr.
func oracle(addr []byte, isV4 bool) func(variable uint8) bool {
	return func(variable uint8) bool {
		if variable == familyVariable {
			return isV4
		}
		return bitAt(addr, int(variable)-1)
	}
}

// evaluate walks the engine from root following oracle, returning the
// terminal value reached.
func (e *Engine) evaluate(root NodeID, oracle func(variable uint8) bool) int {
	for !root.IsTerminal() {
		v, low, high := e.node(root)
		if oracle(v) {
			root = high
		} else {
			root = low
		}
	}
	return e.terminalValue(root)
}

// Contains reports whether addr belongs to the set.
func (s *Set) Contains(addr netip.Addr) bool {
	s.engine.checkOpen()
	b, _, err := addrBytes(addr)
	if err != nil {
		return false
	}
	return s.engine.evaluate(s.root, oracle(b, addr.Is4() || addr.Is4In6())) != 0
}

// ContainsV4 reports whether the 4-byte big-endian address addr belongs to
// the set.
func (s *Set) ContainsV4(addr [4]byte) bool {
	s.engine.checkOpen()
	return s.engine.evaluate(s.root, oracle(addr[:], true)) != 0
}

// ContainsV6 reports whether the 16-byte big-endian address addr belongs to
// the set.
func (s *Set) ContainsV6(addr [16]byte) bool {
	s.engine.checkOpen()
	return s.engine.evaluate(s.root, oracle(addr[:], false)) != 0
}

// Empty reports whether the set contains no addresses.
func (s *Set) Empty() bool {
	return s.engine.isTerminalValue(s.root, 0)
}

// Equal reports whether s and other represent the same set of addresses.
// Thanks to hash-consing this is simply identifier equality on the roots.
// Comparing sets from different engines is a programming error: node
// identifiers are only meaningful relative to the engine that allocated
// them, so Equal panics with ErrCrossEngine instead of silently comparing
// unrelated numbers.
func (s *Set) Equal(other *Set) bool {
	if s.engine != other.engine {
		panic(ErrCrossEngine)
	}
	return s.root == other.root
}

// MemorySize estimates the memory footprint, in bytes, of the nodes
// reachable from the set's root. It is a hint (see node.go's perNodeBytes);
// reachable-node counting is the normative metric.
func (s *Set) MemorySize() int {
	return s.engine.memorySize(s.root)
}

// ReachableNodeCount returns the number of distinct nonterminal nodes
// reachable from the set's root.
func (s *Set) ReachableNodeCount() int {
	return s.engine.reachableCount(s.root)
}

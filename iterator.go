// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "net/netip"

// SetIterator enumerates the addresses or CIDR networks described by a
// Set. It is a two-layer state machine built on PathIterator: the outer
// layer walks BDD paths whose terminal matches the requested value, and
// the inner layer expands each matching assignment, once per address
// family it is compatible with, into concrete addresses or network
// blocks.
type SetIterator struct {
	outer     *PathIterator
	desired   int
	summarize bool
	pending   []pendingEntry
	current   pendingEntry
}

type pendingEntry struct {
	addr netip.Addr
	bits int
}

// Iterate returns a SetIterator over s. desiredValue selects which
// terminal value to enumerate (1 for set membership). When summarize is
// true, the iterator yields the largest CIDR block consistent with each
// BDD path rather than every individual address under it.
func (s *Set) Iterate(desiredValue int, summarize bool) *SetIterator {
	return &SetIterator{
		outer:     NewPathIterator(s.engine, s.root),
		desired:   desiredValue,
		summarize: summarize,
	}
}

// Next advances the iterator and reports whether a value is available.
func (it *SetIterator) Next() bool {
	for len(it.pending) == 0 {
		if it.outer.Done() {
			return false
		}
		if it.outer.Value() == it.desired {
			it.pending = expandPaths(it.outer.Assignment(), it.summarize)
		}
		it.outer.Advance()
	}
	it.current = it.pending[0]
	it.pending = it.pending[1:]
	return true
}

// Value returns the address and prefix length (netmask) produced by the
// most recent call to Next. In individual-address mode bits is always the
// family's full width (32 or 128).
func (it *SetIterator) Value() (netip.Addr, int) {
	return it.current.addr, it.current.bits
}

// familyPlan describes one address family an assignment is compatible
// with.
type familyPlan struct {
	isV4    bool
	maxBits int
}

func plansFor(assignment *Assignment) []familyPlan {
	switch assignment.Get(familyVariable) {
	case True:
		return []familyPlan{{isV4: true, maxBits: MaxIPv4Bits}}
	case False:
		return []familyPlan{{isV4: false, maxBits: MaxIPv6Bits}}
	default: // Either: emit both families for this path.
		return []familyPlan{
			{isV4: true, maxBits: MaxIPv4Bits},
			{isV4: false, maxBits: MaxIPv6Bits},
		}
	}
}

// expandPaths produces every (address, netmask) pair described by a single
// matching BDD path, across every address family the path is compatible
// with.
func expandPaths(assignment *Assignment, summarize bool) []pendingEntry {
	var out []pendingEntry
	for _, plan := range plansFor(assignment) {
		// Pin the family discriminator to this plan's family so it never
		// shows up as a spurious Either variable in the expansion below.
		pinned := assignment.clone()
		if plan.isV4 {
			pinned.Set(familyVariable, True)
		} else {
			pinned.Set(familyVariable, False)
		}

		depth := plan.maxBits
		if summarize {
			depth = 0
			for v := plan.maxBits; v >= 1; v-- {
				if pinned.Get(uint8(v)) != Either {
					depth = v
					break
				}
			}
		}

		exp := newExpandedAssignment(pinned, depth+1)
		for {
			bytes := make([]byte, plan.maxBits/8)
			for i := 0; i < depth; i++ {
				setBitAt(bytes, i, exp.Bit(i+1))
			}

			var addr netip.Addr
			if plan.isV4 {
				addr = netip.AddrFrom4([4]byte(bytes))
			} else {
				addr = netip.AddrFrom16([16]byte(bytes))
			}

			bits := plan.maxBits
			if summarize {
				bits = depth
			}
			out = append(out, pendingEntry{addr: addr, bits: bits})

			exp.Advance()
			if exp.Finished() {
				break
			}
		}
	}
	return out
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"encoding/binary"
	"io"
	"net/netip"
)

// Map associates IPv4 and IPv6 addresses with integer-valued terminals,
// reusing the Set encoding but with a default value standing in for every
// address never explicitly updated, and Ite as the primitive for region
// updates instead of Or. IsEmpty compares the map's root against the
// default's BDD identifier, so the default is stored as a node, not a raw
// integer, to keep that comparison an identifier comparison.
type Map struct {
	engine  *Engine
	root    NodeID
	deflt   NodeID
	deflVal int
}

// NewMap returns a map where every address carries defaultValue.
func NewMap(e *Engine, defaultValue int) *Map {
	e.checkOpen()
	d := e.terminal(defaultValue)
	return &Map{engine: e, root: d, deflt: d, deflVal: defaultValue}
}

// Root returns the map's underlying node identifier.
func (m *Map) Root() NodeID {
	return m.root
}

// fromMapRoot reconstructs a Map around an existing root and default,
// used by LoadMap.
func fromMapRoot(e *Engine, root, deflt NodeID, deflVal int) *Map {
	return &Map{engine: e, root: root, deflt: deflt, deflVal: deflVal}
}

// updatePrefix sets every address in addr/netmask to value, using Ite to
// replace just that region of the BDD: new_root = ITE(region, value,
// old_root). An invalid netmask is a silent no-op, matching Set.addPrefix.
func (m *Map) updatePrefix(addr []byte, netmask, maxBits int, isV4 bool, value int) {
	if netmask <= 0 || netmask > maxBits {
		return
	}
	e := m.engine
	region := wrapFamily(e, buildChain(e, addr, netmask), isV4)
	m.root = e.Ite(region, e.terminal(value), m.root)
}

// SetV4 updates every address in addr/netmask to value.
func (m *Map) SetV4(addr [4]byte, netmask, value int) {
	m.engine.checkOpen()
	m.updatePrefix(addr[:], netmask, MaxIPv4Bits, true, value)
}

// SetV6 updates every address in addr/netmask to value.
func (m *Map) SetV6(addr [16]byte, netmask, value int) {
	m.engine.checkOpen()
	m.updatePrefix(addr[:], netmask, MaxIPv6Bits, false, value)
}

// Set updates every address in prefix to value.
func (m *Map) Set(prefix netip.Prefix, value int) error {
	m.engine.checkOpen()
	b, maxBits, err := addrBytes(prefix.Addr())
	if err != nil {
		return err
	}
	m.updatePrefix(b, prefix.Bits(), maxBits, maxBits == MaxIPv4Bits, value)
	return nil
}

// Get returns the value associated with addr: either the value from the
// most recent update covering it, or the map's default.
func (m *Map) Get(addr netip.Addr) int {
	m.engine.checkOpen()
	b, _, err := addrBytes(addr)
	if err != nil {
		return m.deflVal
	}
	return m.engine.evaluate(m.root, oracle(b, addr.Is4() || addr.Is4In6()))
}

// IsEmpty reports whether the map has never been updated away from its
// default: it compares the map's root against the default's node
// identifier directly, which only works because the default is stored as
// a node rather than compared by raw value.
func (m *Map) IsEmpty() bool {
	return m.root == m.deflt
}

// Equal reports whether m and other carry the same default value and the
// same root identifier. As with Set.Equal, comparing maps from different
// engines is a programming error and panics with ErrCrossEngine rather
// than comparing identifiers that belong to unrelated node tables.
func (m *Map) Equal(other *Map) bool {
	if m.engine != other.engine {
		panic(ErrCrossEngine)
	}
	return m.root == other.root && m.deflVal == other.deflVal
}

// Save writes m to w: a 4-byte big-endian default value, followed by the
// map's root serialized with the same binary format used by Set.
func (m *Map) Save(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, int32(m.deflVal)); err != nil {
		return wrap(err, "writing map default value")
	}
	return saveNode(w, m.engine, m.root)
}

// LoadMap reads a map previously written by Map.Save into engine e.
func LoadMap(e *Engine, r io.Reader) (*Map, error) {
	e.checkOpen()
	var deflVal int32
	if err := binary.Read(r, binary.BigEndian, &deflVal); err != nil {
		return nil, wrapRead(err, "reading map default value")
	}
	set, err := Load(e, r)
	if err != nil {
		return nil, err
	}
	return fromMapRoot(e, set.root, e.terminal(int(deflVal)), int(deflVal)), nil
}

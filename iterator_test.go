// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"net/netip"
	"testing"
)

//********************************************************************************************

// TestIterateSummarizeMergesAdjacent checks that adding 192.168.1.0 and
// 192.168.1.1, then summarize-iterating, yields a single 192.168.1.0/31
// entry.

func TestIterateSummarizeMergesAdjacent(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	if _, err := s.Add(netip.MustParsePrefix("192.168.1.0/32")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(netip.MustParsePrefix("192.168.1.1/32")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	it := s.Iterate(1, true)
	if !it.Next() {
		t.Fatalf("expected at least one entry")
	}
	addr, bits := it.Value()
	if addr.String() != "192.168.1.0" || bits != 31 {
		t.Errorf("expected 192.168.1.0/31, actual %s/%d", addr, bits)
	}
	if it.Next() {
		t.Errorf("expected exactly one summarized entry")
	}
}

//********************************************************************************************

func TestIterateIndividualAddresses(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	if _, err := s.Add(netip.MustParsePrefix("10.0.0.0/30")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	it := s.Iterate(1, false)
	count := 0
	for it.Next() {
		addr, bits := it.Value()
		if bits != MaxIPv4Bits {
			t.Errorf("individual-address mode: expected bits=%d, actual %d", MaxIPv4Bits, bits)
		}
		if !s.Contains(addr) {
			t.Errorf("iterated address %s: expected Contains == true", addr)
		}
		count++
	}
	if count != 4 {
		t.Errorf("10.0.0.0/30: expected 4 individual addresses, actual %d", count)
	}
}

//********************************************************************************************

// TestIterateEverythingEdgeCase covers a BDD where every variable,
// including the family discriminator, is Either: summarizing it must
// produce both 0.0.0.0/0 and ::/0.

func TestIterateEverythingEdgeCase(t *testing.T) {
	e := New()
	defer e.Teardown()

	root := e.terminal(1)
	it := NewPathIterator(e, root)
	if it.Done() {
		t.Fatalf("expected one path over the universal BDD")
	}
	if it.Value() != 1 {
		t.Fatalf("expected terminal value 1")
	}

	entries := expandPaths(it.Assignment(), true)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (v4 and v6), actual %d", len(entries))
	}
	if entries[0].addr.String() != "0.0.0.0" || entries[0].bits != 0 {
		t.Errorf("expected 0.0.0.0/0 first, actual %s/%d", entries[0].addr, entries[0].bits)
	}
	if entries[1].bits != 0 || entries[1].addr.String() != "::" {
		t.Errorf("expected ::/0 second, actual %s/%d", entries[1].addr, entries[1].bits)
	}
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"net/netip"
	"testing"
)

//********************************************************************************************

// TestSetAddContains adds an address and then a covering network, probing
// membership after each.

func TestSetAddContains(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	if _, err := s.Add(netip.MustParsePrefix("192.168.1.100/32")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !s.Contains(netip.MustParseAddr("192.168.1.100")) {
		t.Errorf("contains(192.168.1.100): expected true")
	}
	if s.Contains(netip.MustParseAddr("192.168.1.101")) {
		t.Errorf("contains(192.168.1.101): expected false")
	}

	if _, err := s.Add(netip.MustParsePrefix("192.168.1.0/24")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !s.Contains(netip.MustParseAddr("192.168.1.101")) {
		t.Errorf("contains(192.168.1.101) after adding /24: expected true")
	}
}

//********************************************************************************************

// TestSetIdempotence checks that adding the same network twice leaves the
// identifier unchanged and reports "already present" only on the second
// call.

func TestSetIdempotence(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	prefix := netip.MustParsePrefix("192.168.0.1/32")

	first, err := s.Add(prefix)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first {
		t.Errorf("first Add: expected alreadyPresent=false, got true")
	}

	rootAfterFirst := s.root
	second, err := s.Add(prefix)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !second {
		t.Errorf("second Add: expected alreadyPresent=true, got false")
	}
	if s.root != rootAfterFirst {
		t.Errorf("second Add changed the root: expected %d, got %d", rootAfterFirst, s.root)
	}
}

//********************************************************************************************

// TestSetEqualityByHashConsing checks that two independently built sets
// containing the same single address are identifier-equal.

func TestSetEqualityByHashConsing(t *testing.T) {
	e := New()
	defer e.Teardown()

	a := NewSet(e)
	b := NewSet(e)
	prefix := netip.MustParsePrefix("192.168.0.1/32")

	if _, err := a.Add(prefix); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := b.Add(prefix); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !a.Equal(b) {
		t.Errorf("two sets built from the same prefix: expected Equal")
	}
}

//********************************************************************************************

func TestSetEmpty(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	if !s.Empty() {
		t.Errorf("new set: expected Empty() == true")
	}
	if _, err := s.Add(netip.MustParsePrefix("10.0.0.0/8")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Empty() {
		t.Errorf("set after Add: expected Empty() == false")
	}
}

//********************************************************************************************

// TestSetInvalidNetmask checks that a netmask of zero is a silent no-op
// that reports "already present".

func TestSetInvalidNetmask(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	alreadyPresent := s.AddV4([4]byte{192, 168, 0, 1}, 0)
	if !alreadyPresent {
		t.Errorf("AddV4 with netmask=0: expected alreadyPresent=true")
	}
	if !s.Empty() {
		t.Errorf("AddV4 with netmask=0: expected the set to remain empty")
	}
}

//********************************************************************************************

func TestSetDualFamily(t *testing.T) {
	e := New()
	defer e.Teardown()

	s := NewSet(e)
	if _, err := s.Add(netip.MustParsePrefix("10.0.0.1/32")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(netip.MustParsePrefix("2001:db8::1/128")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !s.Contains(netip.MustParseAddr("10.0.0.1")) {
		t.Errorf("contains(10.0.0.1): expected true")
	}
	if !s.Contains(netip.MustParseAddr("2001:db8::1")) {
		t.Errorf("contains(2001:db8::1): expected true")
	}
	if s.Contains(netip.MustParseAddr("10.0.0.2")) {
		t.Errorf("contains(10.0.0.2): expected false")
	}
}

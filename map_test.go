// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"bytes"
	"net/netip"
	"testing"
)

//********************************************************************************************

func TestMapDefault(t *testing.T) {
	e := New()
	defer e.Teardown()

	m := NewMap(e, 7)
	if !m.IsEmpty() {
		t.Errorf("new map: expected IsEmpty() == true")
	}
	if got := m.Get(netip.MustParseAddr("192.168.0.1")); got != 7 {
		t.Errorf("Get on untouched map: expected default 7, actual %d", got)
	}
}

//********************************************************************************************

func TestMapSetGet(t *testing.T) {
	e := New()
	defer e.Teardown()

	m := NewMap(e, 0)
	if err := m.Set(netip.MustParsePrefix("192.168.1.0/24"), 42); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := m.Get(netip.MustParseAddr("192.168.1.5")); got != 42 {
		t.Errorf("Get inside updated region: expected 42, actual %d", got)
	}
	if got := m.Get(netip.MustParseAddr("10.0.0.1")); got != 0 {
		t.Errorf("Get outside updated region: expected default 0, actual %d", got)
	}
	if m.IsEmpty() {
		t.Errorf("map after Set: expected IsEmpty() == false")
	}
}

//********************************************************************************************

// TestMapSaveLoad checks that a default-valued empty map round-trips to an
// identifier-equal map.

func TestMapSaveLoad(t *testing.T) {
	e := New()
	defer e.Teardown()

	m := NewMap(e, 0)

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadMap(e, &buf)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if !m.Equal(loaded) {
		t.Errorf("Save/LoadMap round trip: expected Equal maps")
	}
	if !loaded.IsEmpty() {
		t.Errorf("loaded default map: expected IsEmpty() == true")
	}
}

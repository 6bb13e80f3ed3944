// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "testing"

//********************************************************************************************

func TestAssignmentTrailingEitherEquality(t *testing.T) {
	a := &Assignment{}
	a.Set(0, True)
	a.Set(1, False)

	b := &Assignment{}
	b.Set(0, True)
	b.Set(1, False)
	b.Set(2, Either)

	if !a.Equal(b) {
		t.Errorf("assignments differing only by a trailing Either: expected Equal")
	}
}

//********************************************************************************************

func TestAssignmentCut(t *testing.T) {
	a := &Assignment{}
	a.Set(0, True)
	a.Set(1, True)
	a.Set(2, False)

	a.Cut(1)
	if got := a.Get(1); got != Either {
		t.Errorf("Cut(1): variable 1 expected Either, actual %v", got)
	}
	if got := a.Get(2); got != Either {
		t.Errorf("Cut(1): variable 2 expected Either, actual %v", got)
	}
	if got := a.Get(0); got != True {
		t.Errorf("Cut(1): variable 0 expected unchanged True, actual %v", got)
	}
}

//********************************************************************************************

func TestAssignmentUnsetIsEither(t *testing.T) {
	a := &Assignment{}
	if got := a.Get(42); got != Either {
		t.Errorf("Get on unset variable: expected Either, actual %v", got)
	}
}

//********************************************************************************************

func TestExpandedAssignmentEnumeration(t *testing.T) {
	a := &Assignment{}
	a.Set(0, True)
	// variable 1 stays Either

	exp := newExpandedAssignment(a, 2)

	var seen [][2]bool
	for {
		seen = append(seen, [2]bool{exp.Bit(0), exp.Bit(1)})
		exp.Advance()
		if exp.Finished() {
			break
		}
	}

	want := [][2]bool{{true, false}, {true, true}}
	if len(seen) != len(want) {
		t.Fatalf("expansion count: expected %d, actual %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("expansion[%d]: expected %v, actual %v", i, want[i], seen[i])
		}
	}
}

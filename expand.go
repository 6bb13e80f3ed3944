// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "github.com/bits-and-blooms/bitset"

// ExpandedAssignment is a concrete bit vector over [0, lastVar) derived
// from an Assignment by choosing values for every Either variable. It
// enumerates choices in lexicographic order: all-false first, then
// advancing as if the Either variables were a little-endian counter whose
// least-significant bit is the *last* Either variable.
type ExpandedAssignment struct {
	values   *bitset.BitSet
	eithers  []uint8
	lastVar  int
	finished bool
}

// newExpandedAssignment builds the initial (all-Either-bits-false)
// expansion of assignment, covering variables [0, lastVar).
func newExpandedAssignment(assignment *Assignment, lastVar int) *ExpandedAssignment {
	exp := &ExpandedAssignment{
		values:  bitset.New(uint(lastVar)),
		lastVar: lastVar,
	}

	stored := assignment.Len()
	if stored > lastVar {
		stored = lastVar
	}

	for v := 0; v < stored; v++ {
		switch assignment.Get(uint8(v)) {
		case Either:
			exp.eithers = append(exp.eithers, uint8(v))
		case True:
			exp.values.Set(uint(v))
		case False:
			// bit already clear
		}
	}
	for v := stored; v < lastVar; v++ {
		exp.eithers = append(exp.eithers, uint8(v))
	}

	return exp
}

// Bit reports the concrete value chosen for variable v in the current
// expansion.
func (exp *ExpandedAssignment) Bit(v int) bool {
	return exp.values.Test(uint(v))
}

// Finished reports whether Advance has exhausted every combination of the
// Either variables.
func (exp *ExpandedAssignment) Finished() bool {
	return exp.finished
}

// Advance steps to the next combination of Either-variable values, in
// little-endian counter order over the eithers list (last Either variable
// is the least significant bit). It is a no-op once Finished is true.
func (exp *ExpandedAssignment) Advance() {
	if exp.finished {
		return
	}
	for i := len(exp.eithers); i > 0; i-- {
		v := uint(exp.eithers[i-1])
		if exp.values.Test(v) {
			exp.values.Clear(v)
			continue
		}
		exp.values.Set(v)
		return
	}
	exp.finished = true
}

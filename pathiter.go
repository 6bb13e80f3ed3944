// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

// PathIterator walks every root-to-leaf path of a BDD, yielding the
// assignment that reaches each terminal along with the terminal's value.
// Implemented as a stateful stack walk: it always descends the low branch
// first (assigning False to each variable encountered), and on Advance
// backtracks to the most recent node still assigned False, flips it to
// True, and descends its high branch the same way.
type PathIterator struct {
	engine     *Engine
	stack      []NodeID
	assignment *Assignment
	value      int
	finished   bool
}

// NewPathIterator returns an iterator positioned at the first (all-low)
// path of the BDD rooted at root.
func NewPathIterator(e *Engine, root NodeID) *PathIterator {
	it := &PathIterator{
		engine:     e,
		assignment: &Assignment{},
	}
	it.descend(root)
	return it
}

// descend pushes nonterminals onto the stack, always taking the low
// branch and assigning False, until a terminal is reached.
func (it *PathIterator) descend(id NodeID) {
	for !id.IsTerminal() {
		v, low, _ := it.engine.node(id)
		it.stack = append(it.stack, id)
		it.assignment.Set(v, False)
		id = low
	}
	it.value = it.engine.terminalValue(id)
}

// Assignment returns the assignment reaching the current path's terminal.
// The returned value is owned by the iterator; callers that need to retain
// it across an Advance call should clone it.
func (it *PathIterator) Assignment() *Assignment {
	return it.assignment
}

// Value returns the terminal value reached by the current path.
func (it *PathIterator) Value() int {
	return it.value
}

// Done reports whether every path has been visited.
func (it *PathIterator) Done() bool {
	return it.finished
}

// Advance moves to the next root-to-leaf path. It is a no-op once Done is
// true.
func (it *PathIterator) Advance() {
	if it.finished {
		return
	}
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		v, _, high := it.engine.node(top)

		if it.assignment.Get(v) == True {
			// Both branches of this node are exhausted: pop it and
			// restore its variable to indeterminate before continuing
			// to its parent.
			it.stack = it.stack[:len(it.stack)-1]
			it.assignment.Set(v, Either)
			continue
		}

		it.assignment.Set(v, True)
		it.descend(high)
		return
	}
	it.finished = true
}

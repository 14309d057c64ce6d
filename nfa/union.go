package nfa

// Union merges automata into a single automaton recognizing the union of their
// languages. A fresh initial state is drawn from alloc, with epsilon transitions
// to the initial states of all fragments. Transition tables and final states of
// the fragments are merged without renaming any states, which requires the
// fragments to have been compiled with alloc, too.
//
// The fragments are not modified. A union of zero automata has an initial state
// and nothing else; it does not accept any input, not even the empty one.
func Union(fragments []*Automaton, alloc *Allocator) *Automaton {
	start := alloc.Next()
	A := &Automaton{
		table:   NewTransitionTable(),
		initial: start,
		finals:  NewStateSet(),
	}
	inits := make([]StateID, 0, len(fragments))
	for _, f := range fragments {
		A.table.Merge(f.table)
		A.finals.Union(f.finals)
		inits = append(inits, f.initial)
	}
	A.table.Add(start, Epsilon, inits...)
	tracer().Debugf("union of %d automata: initial=%d, %d final states, %d transition entries",
		len(fragments), start, A.finals.Size(), A.table.Size())
	return A
}

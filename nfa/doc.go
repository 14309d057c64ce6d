/*
Package nfa implements non-deterministic finite automata for lexical scanning.

Automata are constructed from normalized patterns (see package regex) by Thompson
construction. All states of one build session are numbered by a single Allocator,
therefore automata of different patterns never share state IDs, and merging them
into a single automaton (Union) is a plain union of transition tables.

    alloc := nfa.NewAllocator()
    A1, _ := nfa.Compile(p1, alloc)      // p1, p2 are normalized patterns
    A2, _ := nfa.Compile(p2, alloc)
    A := nfa.Union([]*nfa.Automaton{A1, A2}, alloc)

Automata are simulated on sets of states, without ever converting them into a DFA:

    S := A.EpsilonClosure(nfa.NewStateSet(A.Initial()))
    S = A.EpsilonClosure(A.Step(S, 'x'))

Transitions which do not consume input are labeled with the sentinel symbol Epsilon,
which is outside of every input alphabet.

Automata may be exported to Graphviz's Dot format, for debugging purposes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfalex.nfa'.
func tracer() tracing.Trace {
	return tracing.Select("nfalex.nfa")
}

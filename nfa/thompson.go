package nfa

import (
	"errors"
	"fmt"

	"github.com/npillmayer/nfalex/regex"
)

// ErrNotNormalized is returned by Compile for patterns containing convenience
// nodes. Patterns have to be normalized with regex.Normalize first.
var ErrNotNormalized = errors.New("pattern is not normalized")

// Automaton is a non-deterministic finite automaton with a single initial state.
// Automata are immutable after construction.
type Automaton struct {
	table   *TransitionTable
	initial StateID
	finals  *StateSet
}

// Initial returns the initial state.
func (A *Automaton) Initial() StateID {
	return A.initial
}

// Finals returns a copy of the set of final (accepting) states.
func (A *Automaton) Finals() *StateSet {
	return A.finals.Copy()
}

// IsFinal is true if id is a final state.
func (A *Automaton) IsFinal(id StateID) bool {
	return A.finals.Contains(id)
}

// FinalsIn returns the final states contained in S.
func (A *Automaton) FinalsIn(S *StateSet) *StateSet {
	return S.Intersection(A.finals)
}

// Targets returns the states reachable from state `from` on symbol sym.
func (A *Automaton) Targets(from StateID, sym Symbol) []StateID {
	return A.table.Targets(from, sym)
}

// EachTransition calls f for every (state, symbol) pair with transitions.
func (A *Automaton) EachTransition(f func(from StateID, sym Symbol, to []StateID)) {
	A.table.Each(f)
}

// StateCount returns the number of distinct states mentioned by the automaton.
func (A *Automaton) StateCount() int {
	S := NewStateSet(A.initial).Union(A.finals)
	A.table.Each(func(from StateID, _ Symbol, to []StateID) {
		S.Add(from).Add(to...)
	})
	return S.Size()
}

// --- Thompson construction -------------------------------------------------

// Compile creates an automaton for a normalized pattern by Thompson construction.
// State IDs are drawn from alloc, with the initial state allocated first.
//
// Every construction step receives an entry state and returns the set of its exit
// states:
//
//    ε, c, [S]   entry ─ε|c|S→ x                        exits {x}
//    a b         entry ─a→ outA ─ε→ mid ─b→ outB         exits outB
//    a | b       entry ─ε→ {inA,inB}, outA,outB ─ε→ end  exits {end}
//    a*          entry, outA ─ε→ {inA, after}            exits {after}
//
func Compile(pattern regex.Node, alloc *Allocator) (*Automaton, error) {
	if alloc == nil {
		return nil, errors.New("cannot compile pattern without state allocator")
	}
	c := &compiler{table: NewTransitionTable(), alloc: alloc}
	entry := alloc.Next()
	exits, err := c.build(pattern, entry)
	if err != nil {
		return nil, err
	}
	A := &Automaton{
		table:   c.table,
		initial: entry,
		finals:  NewStateSet(exits...),
	}
	tracer().Debugf("compiled %v: initial=%d, finals=%v", pattern, A.initial, A.finals)
	return A, nil
}

type compiler struct {
	table *TransitionTable
	alloc *Allocator
}

func (c *compiler) build(node regex.Node, entry StateID) ([]StateID, error) {
	switch r := node.(type) {
	case regex.Epsilon:
		x := c.alloc.Next()
		c.table.Add(entry, Epsilon, x)
		return []StateID{x}, nil
	case regex.Literal:
		x := c.alloc.Next()
		c.table.Add(entry, r.Char, x)
		return []StateID{x}, nil
	case regex.CharSet:
		x := c.alloc.Next()
		for _, ch := range r.Chars {
			c.table.Add(entry, ch, x)
		}
		return []StateID{x}, nil
	case regex.Sequence:
		outA, err := c.build(r.Left, entry)
		if err != nil {
			return nil, err
		}
		mid := c.alloc.Next()
		for _, s := range outA {
			c.table.Add(s, Epsilon, mid)
		}
		return c.build(r.Right, mid)
	case regex.Alternation:
		inA, inB := c.alloc.Next(), c.alloc.Next()
		c.table.Add(entry, Epsilon, inA, inB)
		outA, err := c.build(r.Left, inA)
		if err != nil {
			return nil, err
		}
		outB, err := c.build(r.Right, inB)
		if err != nil {
			return nil, err
		}
		end := c.alloc.Next()
		for _, s := range append(outA, outB...) {
			c.table.Add(s, Epsilon, end)
		}
		return []StateID{end}, nil
	case regex.KleeneStar:
		inR := c.alloc.Next()
		outR, err := c.build(r.Inner, inR)
		if err != nil {
			return nil, err
		}
		after := c.alloc.Next()
		for _, s := range outR {
			c.table.Add(s, Epsilon, inR, after) // loop back or leave
		}
		c.table.Add(entry, Epsilon, inR, after) // zero iterations
		return []StateID{after}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotNormalized, node)
}

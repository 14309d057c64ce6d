package nfa

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// EpsilonClosure returns the set of states reachable from S by epsilon transitions
// only, including S itself. S is not modified.
func (A *Automaton) EpsilonClosure(S *StateSet) *StateSet {
	closure := S.Copy()
	worklist := arraystack.New()
	S.Each(func(id StateID) {
		worklist.Push(id)
	})
	for !worklist.Empty() {
		x, _ := worklist.Pop()
		A.table.eachTarget(x.(StateID), Epsilon, func(t StateID) {
			if !closure.Contains(t) {
				closure.Add(t)
				worklist.Push(t)
			}
		})
	}
	return closure
}

// Step returns the set of states reachable from any state of S by a transition
// on symbol sym. Epsilon transitions are not followed, neither before nor after
// the step. Stepping on Epsilon itself yields the empty set.
func (A *Automaton) Step(S *StateSet, sym Symbol) *StateSet {
	R := NewStateSet()
	if sym == Epsilon {
		return R
	}
	S.Each(func(id StateID) {
		A.table.eachTarget(id, sym, func(t StateID) {
			R.Add(t)
		})
	})
	return R
}

// Accepts is true if the automaton accepts the complete input text.
func (A *Automaton) Accepts(text string) bool {
	S := A.EpsilonClosure(NewStateSet(A.initial))
	for _, r := range text {
		if S = A.EpsilonClosure(A.Step(S, r)); S.Empty() {
			return false
		}
	}
	return !A.FinalsIn(S).Empty()
}

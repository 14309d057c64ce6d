package nfa

import (
	"github.com/npillmayer/nfalex/nfa/sparse"
)

// Symbol is an input symbol of an automaton, i.e. a character.
type Symbol = rune

// Epsilon labels transitions which do not consume any input. It is outside of
// every input alphabet.
const Epsilon Symbol = -1

// TransitionTable maps pairs (state, symbol) to sets of target states.
// Adding transitions for a pair which is already present extends the set of
// targets; targets are never overwritten.
type TransitionTable struct {
	matrix *sparse.SetMatrix
}

// NewTransitionTable creates an empty transition table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{matrix: sparse.NewSetMatrix()}
}

// Add adds transitions from state `from` on symbol sym to every state in `to`.
func (tt *TransitionTable) Add(from StateID, sym Symbol, to ...StateID) {
	targets := make([]int, len(to))
	for i, id := range to {
		targets[i] = int(id)
	}
	tt.matrix.Add(int(from), int(sym), targets...)
}

// Targets returns the states reachable from state `from` on symbol sym, in
// ascending order, or nil.
func (tt *TransitionTable) Targets(from StateID, sym Symbol) []StateID {
	values := tt.matrix.Values(int(from), int(sym))
	if values == nil {
		return nil
	}
	ids := make([]StateID, len(values))
	for i, v := range values {
		ids[i] = StateID(v)
	}
	return ids
}

// eachTarget calls f for every state reachable from state `from` on symbol sym.
func (tt *TransitionTable) eachTarget(from StateID, sym Symbol, f func(StateID)) {
	for _, v := range tt.matrix.Values(int(from), int(sym)) {
		f(StateID(v))
	}
}

// Merge adds all transitions of other to tt.
func (tt *TransitionTable) Merge(other *TransitionTable) {
	if other == nil {
		return
	}
	tt.matrix.Merge(other.matrix)
}

// Each calls f for every (state, symbol) pair with transitions, ordered by
// state, then by symbol. Epsilon transitions of a state are visited first.
func (tt *TransitionTable) Each(f func(from StateID, sym Symbol, to []StateID)) {
	tt.matrix.Each(func(i, j int, values []int) {
		ids := make([]StateID, len(values))
		for k, v := range values {
			ids[k] = StateID(v)
		}
		f(StateID(i), Symbol(j), ids)
	})
}

// Size returns the number of (state, symbol) pairs with transitions.
func (tt *TransitionTable) Size() int {
	return tt.matrix.ValueCount()
}

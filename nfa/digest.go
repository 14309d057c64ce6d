package nfa

import (
	"github.com/cnf/structhash"
)

// Digest returns a fingerprint of the automaton's structure. Two automata built
// from the same patterns in the same order with fresh allocators have equal
// digests.
func (A *Automaton) Digest() (string, error) {
	type transition struct {
		From   int
		Symbol int
		To     []int
	}
	type shape struct {
		Initial     int
		Finals      []int
		Transitions []transition
	}
	s := shape{Initial: int(A.initial)}
	A.finals.Each(func(id StateID) {
		s.Finals = append(s.Finals, int(id))
	})
	A.table.Each(func(from StateID, sym Symbol, to []StateID) {
		t := transition{From: int(from), Symbol: int(sym), To: make([]int, len(to))}
		for i, id := range to {
			t.To[i] = int(id)
		}
		s.Transitions = append(s.Transitions, t)
	})
	return structhash.Hash(s, 1)
}

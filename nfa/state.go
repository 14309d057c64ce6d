package nfa

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// StateID identifies a state of an automaton.
type StateID int

// Allocator hands out state IDs in ascending order. All automata which are to be
// combined by Union have to be compiled with the same allocator, one after the other.
type Allocator struct {
	next StateID
}

// NewAllocator creates an allocator starting at state 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh state ID.
func (a *Allocator) Next() StateID {
	id := a.next
	a.next++
	return id
}

// Peek returns the state ID the next call to Next will return.
func (a *Allocator) Peek() StateID {
	return a.next
}

// --- State sets ------------------------------------------------------------

// StateSet is an ordered set of state IDs. The zero value is not usable,
// create sets with NewStateSet.
//
// Set operations Add and Union are destructive, all others are not.
type StateSet struct {
	set *treeset.Set
}

// NewStateSet creates a set containing ids.
func NewStateSet(ids ...StateID) *StateSet {
	S := &StateSet{set: treeset.NewWithIntComparator()}
	for _, id := range ids {
		S.set.Add(int(id))
	}
	return S
}

// Add adds state IDs to S and returns S.
func (S *StateSet) Add(ids ...StateID) *StateSet {
	for _, id := range ids {
		S.set.Add(int(id))
	}
	return S
}

// Contains is true if id is an element of S.
func (S *StateSet) Contains(id StateID) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(int(id))
}

// Size returns the number of states in S.
func (S *StateSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for an empty set.
func (S *StateSet) Empty() bool {
	return S.Size() == 0
}

// Min returns the smallest state ID in S. If S is empty, the second return value
// is false.
func (S *StateSet) Min() (StateID, bool) {
	if S.Empty() {
		return 0, false
	}
	it := S.set.Iterator()
	it.Next()
	return StateID(it.Value().(int)), true
}

// Each calls f for every element of S, in ascending order.
func (S *StateSet) Each(f func(StateID)) {
	if S == nil {
		return
	}
	it := S.set.Iterator()
	for it.Next() {
		f(StateID(it.Value().(int)))
	}
}

// Values returns the elements of S in ascending order.
func (S *StateSet) Values() []StateID {
	ids := make([]StateID, 0, S.Size())
	S.Each(func(id StateID) {
		ids = append(ids, id)
	})
	return ids
}

// Union adds all elements of other to S and returns S.
func (S *StateSet) Union(other *StateSet) *StateSet {
	other.Each(func(id StateID) {
		S.set.Add(int(id))
	})
	return S
}

// Intersection returns a new set with all states contained in both S and other.
func (S *StateSet) Intersection(other *StateSet) *StateSet {
	small, large := S, other
	if small.Size() > large.Size() {
		small, large = large, small
	}
	R := NewStateSet()
	small.Each(func(id StateID) {
		if large.Contains(id) {
			R.set.Add(int(id))
		}
	})
	return R
}

// Equals is true if S and other contain the same states.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	equal := true
	S.Each(func(id StateID) {
		equal = equal && other.Contains(id)
	})
	return equal
}

// Copy returns a new set with the elements of S.
func (S *StateSet) Copy() *StateSet {
	return NewStateSet().Union(S)
}

func (S *StateSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	S.Each(func(id StateID) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%d", id))
	})
	b.WriteString("}")
	return b.String()
}

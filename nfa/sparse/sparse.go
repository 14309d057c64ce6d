/*
Package sparse implements a simple type for sparse matrices of integer sets.
It is used for NFA transition tables, where rows are states, columns are input
symbols (including negative sentinel symbols) and every entry is a set of
target states.

This implementation uses the COO algorithm (a.k.a. triplet-encoding). Triplets
are kept sorted by (row, column), so lookups are binary searches.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SetMatrix is a type for a sparse matrix of integer sets. Construct with
//
//     M := NewSetMatrix()
//
// Now
//
//     M.Add(2, 3, 4711)              // add a value to the set at (2,3)
//     M.Add(2, 3, 123, 4711)         // entry (2,3) is now {123, 4711}
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v := M.Values(10, 10)          // returns nil, i.e. the empty set
//
// Values are never removed. Adding to an existing entry always means set union.
// Row and column indices may be negative.
type SetMatrix struct {
	values []triplet
	maxrow int
}

// Triplet values to store
type triplet struct {
	row, col int
	value    []int // sorted, without duplicates
}

// NewSetMatrix creates a new, empty matrix.
func NewSetMatrix() *SetMatrix {
	return &SetMatrix{
		values: []triplet{},
		maxrow: -1,
	}
}

// ValueCount returns the number of positions which hold a (non-empty) set.
func (m *SetMatrix) ValueCount() int {
	return len(m.values)
}

// MaxRow returns the largest row index in use, or -1 for an empty matrix.
func (m *SetMatrix) MaxRow() int {
	return m.maxrow
}

// Values returns the set at position (i,j), or nil. Clients must not modify
// the returned slice.
func (m *SetMatrix) Values(i, j int) []int {
	k := m.search(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		return m.values[k].value
	}
	return nil
}

// Add values to the set at position (i,j). Adding no values is a no-op.
func (m *SetMatrix) Add(i, j int, values ...int) *SetMatrix {
	if len(values) == 0 {
		return m
	}
	at := m.search(i, j) // will be position of new value
	if at < len(m.values) && m.values[at].storedAt(i, j) {
		m.values[at].value = union(m.values[at].value, values)
		return m
	}
	tnew := triplet{row: i, col: j, value: union(nil, values)}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	if i > m.maxrow {
		m.maxrow = i
	}
	return m
}

// Merge adds every entry of other to m, position by position.
func (m *SetMatrix) Merge(other *SetMatrix) *SetMatrix {
	if other == nil {
		return m
	}
	for _, t := range other.values {
		m.Add(t.row, t.col, t.value...)
	}
	return m
}

// Each calls f for every non-empty position, ordered by row, then by column.
// Clients must not modify the slice handed to f.
func (m *SetMatrix) Each(f func(i, j int, values []int)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// Row calls f for every non-empty position in row i, ordered by column.
func (m *SetMatrix) Row(i int, f func(j int, values []int)) {
	k, _ := slices.BinarySearchFunc(m.values, i, func(t triplet, row int) int {
		return t.row - row
	})
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		f(m.values[k].col, m.values[k].value)
	}
}

// search returns the index of the first triplet not stored left of (i,j).
func (m *SetMatrix) search(i, j int) int {
	k, _ := slices.BinarySearchFunc(m.values, [2]int{i, j}, compareAt)
	return k
}

// compareAt orders triplets by row, then by column.
func compareAt(t triplet, at [2]int) int {
	if t.row != at[0] {
		return t.row - at[0]
	}
	return t.col - at[1]
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%v", t.row, t.col, t.value)
}

// union returns a sorted set of the values of a and b. a must be sorted already.
func union(a []int, b []int) []int {
	u := make([]int, 0, len(a)+len(b))
	u = append(u, a...)
	u = append(u, b...)
	slices.Sort(u)
	return slices.Compact(u)
}

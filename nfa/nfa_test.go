package nfa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/nfalex/regex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, pattern regex.Node, names regex.NameTable, alloc *Allocator) *Automaton {
	t.Helper()
	p, err := regex.Normalize(pattern, names)
	require.NoError(t, err)
	A, err := Compile(p, alloc)
	require.NoError(t, err)
	return A
}

func TestStateSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	S := NewStateSet(5, 1, 3, 1)
	assert.Equal(t, 3, S.Size())
	assert.Equal(t, []StateID{1, 3, 5}, S.Values())
	min, ok := S.Min()
	assert.True(t, ok)
	assert.Equal(t, StateID(1), min)
	_, ok = NewStateSet().Min()
	assert.False(t, ok)
	I := S.Intersection(NewStateSet(3, 4, 5))
	assert.Equal(t, []StateID{3, 5}, I.Values())
	assert.True(t, I.Equals(NewStateSet(5, 3)))
	assert.False(t, I.Equals(S))
	C := S.Copy().Add(7)
	assert.False(t, S.Contains(7), "copy must not share elements")
	assert.Equal(t, "{1, 3, 5, 7}", C.String())
	var nilset *StateSet
	assert.True(t, nilset.Empty())
}

func TestCompileLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	alloc := NewAllocator()
	A := compile(t, regex.Char('a'), nil, alloc)
	assert.Equal(t, StateID(0), A.Initial())
	assert.Equal(t, []StateID{1}, A.Finals().Values())
	assert.Equal(t, []StateID{1}, A.Targets(0, 'a'))
	assert.Nil(t, A.Targets(0, 'b'))
	assert.Equal(t, StateID(2), alloc.Peek())
}

func TestCompileStar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	A := compile(t, regex.Star(regex.Char('a')), nil, NewAllocator())
	// entry 0, inR 1, literal exit 2, after 3
	assert.Equal(t, []StateID{1, 3}, A.Targets(0, Epsilon))
	assert.Equal(t, []StateID{2}, A.Targets(1, 'a'))
	assert.Equal(t, []StateID{1, 3}, A.Targets(2, Epsilon))
	assert.Equal(t, []StateID{3}, A.Finals().Values())
	assert.Equal(t, 4, A.StateCount())
}

func TestCompileRejectsSugar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	_, err := Compile(regex.Seq(regex.Char('a'), regex.Plus(regex.Char('b'))), NewAllocator())
	assert.ErrorIs(t, err, ErrNotNormalized)
	_, err = Compile(regex.Char('a'), nil)
	assert.Error(t, err)
}

func TestAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	names := regex.NameTable{
		"digit":  regex.Range('0', '9'),
		"digits": regex.Plus(regex.Name("digit")),
	}
	for i, test := range []struct {
		pattern regex.Node
		accept  []string
		reject  []string
	}{
		{regex.Eps(), []string{""}, []string{"a"}},
		{regex.Str("if"), []string{"if"}, []string{"", "i", "iff", "fi"}},
		{regex.Or(regex.Str("ab"), regex.Char('c')), []string{"ab", "c"}, []string{"abc", "a", ""}},
		{regex.Star(regex.Set("ab")), []string{"", "a", "abba"}, []string{"abc"}},
		{regex.Seq(regex.Name("digits"), regex.Optional(regex.Seq(regex.Char('.'), regex.Name("digits")))),
			[]string{"1", "12.5", "0.001"}, []string{"", ".5", "1.", "1..2"}},
		{regex.Seq(regex.Char('"'), regex.Star(regex.AllExcept('"')), regex.Char('"')),
			[]string{`""`, `"a b"`}, []string{`"`, `"a"b"`}},
	} {
		A := compile(t, test.pattern, names, NewAllocator())
		for _, s := range test.accept {
			assert.True(t, A.Accepts(s), "test %d: expected %v to accept %q", i, test.pattern, s)
		}
		for _, s := range test.reject {
			assert.False(t, A.Accepts(s), "test %d: expected %v to reject %q", i, test.pattern, s)
		}
	}
}

func TestUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	alloc := NewAllocator()
	patterns := []regex.Node{
		regex.Str("if"),
		regex.Plus(regex.Range('a', 'z')),
		regex.Seq(regex.Char('<'), regex.Optional(regex.Char('='))),
	}
	fragments := make([]*Automaton, len(patterns))
	for i, p := range patterns {
		fragments[i] = compile(t, p, nil, alloc)
	}
	U := Union(fragments, alloc)
	assert.Equal(t, alloc.Peek()-1, U.Initial(), "union start state must be allocated last")
	assert.Equal(t, []StateID{fragments[0].Initial(), fragments[1].Initial(), fragments[2].Initial()},
		U.Targets(U.Initial(), Epsilon))
	// every final state belongs to exactly one fragment, in declaration order
	var last StateID = -1
	for i, f := range fragments {
		for j, g := range fragments {
			if i != j {
				assert.True(t, f.FinalsIn(g.Finals()).Empty())
			}
		}
		for _, id := range f.Finals().Values() {
			assert.True(t, U.IsFinal(id))
			assert.Greater(t, id, last)
			last = id
		}
	}
	// the union accepts exactly what one of the fragments accepts
	for _, s := range []string{"", "if", "i", "ifx", "<", "<=", "<<", "=", "a1", "zz"} {
		accepted := false
		for _, f := range fragments {
			accepted = accepted || f.Accepts(s)
		}
		assert.Equal(t, accepted, U.Accepts(s), "input %q", s)
	}
	E := Union(nil, NewAllocator())
	assert.False(t, E.Accepts(""))
	assert.False(t, E.Accepts("a"))
}

func TestEpsilonClosureFixpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	alloc := NewAllocator()
	A := compile(t, regex.Seq(regex.Star(regex.Or(regex.Char('a'), regex.Eps())),
		regex.Optional(regex.Star(regex.Char('b')))), nil, alloc)
	for id := StateID(0); id < alloc.Peek(); id++ {
		for _, S := range []*StateSet{NewStateSet(id), NewStateSet(id, (id+3)%alloc.Peek())} {
			C := A.EpsilonClosure(S)
			assert.True(t, C.Equals(A.EpsilonClosure(C)), "closure of %v is not a fixpoint", S)
			assert.True(t, S.Intersection(C).Equals(S), "closure of %v must contain its input", S)
		}
	}
	S := NewStateSet(A.Initial())
	A.EpsilonClosure(S)
	assert.Equal(t, 1, S.Size(), "input set must not be modified")
}

func TestStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	A := compile(t, regex.Or(regex.Char('a'), regex.Set("ab")), nil, NewAllocator())
	S := A.EpsilonClosure(NewStateSet(A.Initial()))
	assert.Equal(t, 2, A.Step(S, 'a').Size())
	assert.Equal(t, 1, A.Step(S, 'b').Size())
	assert.True(t, A.Step(S, 'c').Empty())
	assert.True(t, A.Step(S, Epsilon).Empty())
	assert.True(t, A.Step(NewStateSet(), 'a').Empty())
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	A := compile(t, regex.Seq(regex.Range('a', 'c'), regex.Char('"')), nil, NewAllocator())
	var buf bytes.Buffer
	require.NoError(t, A.ToGraphViz(&buf))
	dot := buf.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph {"))
	assert.Contains(t, dot, `[label="a-c"]`)
	assert.Contains(t, dot, `[label="\""]`)
	assert.Contains(t, dot, `[label="ε"]`)
	assert.Contains(t, dot, "doublecircle")
}

func TestDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.nfa")
	defer teardown()
	//
	build := func(p regex.Node) string {
		d, err := compile(t, p, nil, NewAllocator()).Digest()
		require.NoError(t, err)
		return d
	}
	p := regex.Or(regex.Str("for"), regex.Star(regex.Range('0', '9')))
	assert.Equal(t, build(p), build(p))
	assert.NotEqual(t, build(p), build(regex.Str("for")))
}

package regex

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	for i, test := range []struct {
		node Node
		str  string
	}{
		{Eps(), "ε"},
		{Char('a'), "'a'"},
		{Set("cab"), "[a-c]"},
		{Chars('x', 'a', 'x'), "[ax]"},
		{Seq(Char('a'), Char('b'), Char('c')), "('a' ('b' 'c'))"},
		{Or(Char('a'), Char('b')), "('a' | 'b')"},
		{Star(Char('a')), "'a'*"},
		{Plus(Name("digit")), "{digit}+"},
		{Optional(Str("x")), `"x"?`},
		{Range('0', '9'), "[0-9]"},
		{Seq(), "ε"},
		{Or(Char('z')), "'z'"},
	} {
		if s := test.node.String(); s != test.str {
			t.Errorf("test %d: expected %s, have %s", i, test.str, s)
		}
	}
}

func TestAllExcept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	cs := AllExcept('"', '\n').(CharSet)
	if len(cs.Chars) != int(MaxChar)+1-2 {
		t.Errorf("expected complement to have %d chars, has %d", int(MaxChar)-1, len(cs.Chars))
	}
	for _, c := range cs.Chars {
		if c == '"' || c == '\n' {
			t.Errorf("expected %q to be excluded from complement", c)
		}
	}
}

func TestNormalizeSugar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	for i, test := range []struct {
		node Node
		str  string
	}{
		{Str(""), "ε"},
		{Str("if"), "('i' ('f' ε))"},
		{Range('a', 'c'), "[a-c]"},
		{Range('c', 'a'), "[]"},
		{Plus(Char('a')), "('a' 'a'*)"},
		{Optional(Char('a')), "('a' | ε)"},
		{Star(Optional(Range('0', '1'))), "([0-1] | ε)*"},
		{Seq(Char('a'), Eps()), "('a' ε)"},
	} {
		n, err := Normalize(test.node, nil)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if !IsNormalized(n) {
			t.Errorf("test %d: result %s is not normalized", i, n)
		}
		if s := n.String(); s != test.str {
			t.Errorf("test %d: expected %s, have %s", i, test.str, s)
		}
	}
}

func TestNormalizeNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	names := NameTable{
		"lower":  Range('a', 'b'),
		"upper":  Range('A', 'B'),
		"letter": Or(Name("lower"), Name("upper")),
		"word":   Plus(Name("letter")),
	}
	n, err := Normalize(Name("word"), names)
	if err != nil {
		t.Fatal(err)
	}
	expected := "(([a-b] | [A-B]) ([a-b] | [A-B])*)"
	if n.String() != expected {
		t.Errorf("expected %s, have %s", expected, n)
	}
	// a name may be used more than once without being a cycle
	n, err = Normalize(Seq(Name("lower"), Name("lower")), names)
	if err != nil {
		t.Fatal(err)
	}
	if !IsNormalized(n) {
		t.Errorf("expected %s to be normalized", n)
	}
}

func TestNormalizeNameNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	_, err := Normalize(Seq(Char('a'), Name("digit")), nil)
	var nnf *NameNotFoundError
	if !errors.As(err, &nnf) || nnf.Name != "digit" || !nnf.NoTable {
		t.Errorf("expected name-not-found error without table, have %v", err)
	}
	names := NameTable{"alias": Name("missing")}
	_, err = Normalize(Star(Name("alias")), names)
	if !errors.As(err, &nnf) || nnf.Name != "missing" || nnf.NoTable {
		t.Errorf("expected name-not-found error for 'missing', have %v", err)
	}
}

func TestNormalizeCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	names := NameTable{
		"a": Seq(Char('a'), Name("b")),
		"b": Optional(Name("c")),
		"c": Star(Name("a")),
	}
	_, err := Normalize(Name("a"), names)
	var cyc *CyclicReferenceError
	if !errors.As(err, &cyc) {
		t.Fatalf("expected cyclic reference error, have %v", err)
	}
	if len(cyc.Path) != 4 || cyc.Path[0] != "a" || cyc.Path[3] != "a" {
		t.Errorf("unexpected cycle path %v", cyc.Path)
	}
	t.Logf("error: %v", err)
	names = NameTable{"self": Name("self")}
	if _, err = Normalize(Name("self"), names); !errors.As(err, &cyc) {
		t.Errorf("expected direct self reference to be a cycle, have %v", err)
	}
}

func TestIsNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.regex")
	defer teardown()
	//
	if IsNormalized(Seq(Char('a'), Plus(Char('b')))) {
		t.Errorf("expected nested Plus to be detected")
	}
	if !IsNormalized(Or(Char('a'), Star(Set("xy")))) {
		t.Errorf("expected primitive tree to be normalized")
	}
	if IsNormalized(nil) {
		t.Errorf("expected nil to be rejected")
	}
}

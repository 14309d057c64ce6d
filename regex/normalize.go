package regex

import (
	"fmt"
	"strings"
)

// NameNotFoundError is returned by Normalize if a pattern references a name
// which is not defined in the name table.
type NameNotFoundError struct {
	Name    string
	NoTable bool // no name table has been provided at all
}

func (e *NameNotFoundError) Error() string {
	if e.NoTable {
		return fmt.Sprintf("pattern references name %q, but no name table was provided", e.Name)
	}
	return fmt.Sprintf("name not found: %q", e.Name)
}

// CyclicReferenceError is returned by Normalize if resolving a name requires
// resolving the same name again. Path lists the names on the resolution path,
// starting and ending with the offending name.
type CyclicReferenceError struct {
	Path []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic name reference: %s", strings.Join(e.Path, " → "))
}

// Normalize expands all convenience forms of a pattern into primitive nodes and
// resolves named references against names (which may be nil). The result
// consists of Epsilon, Literal, CharSet, Sequence, Alternation and KleeneStar nodes
// only.
//
// Expansion rules:
//
//    Name(n)       →  Normalize(names[n])
//    Str("abc")    →  Seq('a', Seq('b', Seq('c', ε)))      Str("") → ε
//    Range(lo,hi)  →  CharSet{lo…hi}
//    Plus(r)       →  Seq(r, Star(r))
//    Optional(r)   →  Or(r, ε)
//
func Normalize(node Node, names NameTable) (Node, error) {
	n := normalizer{names: names}
	return n.normalize(node)
}

type normalizer struct {
	names NameTable
	path  []string // names currently being resolved
}

func (n *normalizer) normalize(node Node) (Node, error) {
	switch r := node.(type) {
	case Epsilon, Literal, CharSet:
		return r, nil
	case NamedRef:
		return n.resolve(r.Name)
	case LiteralString:
		return foldString([]rune(r.Text)), nil
	case CharRange:
		return rangeSet(r.Lo, r.Hi), nil
	case OneOrMore:
		inner, err := n.normalize(r.Inner)
		if err != nil {
			return nil, err
		}
		return Sequence{Left: inner, Right: KleeneStar{Inner: inner}}, nil
	case ZeroOrOne:
		inner, err := n.normalize(r.Inner)
		if err != nil {
			return nil, err
		}
		return Alternation{Left: inner, Right: Epsilon{}}, nil
	case Sequence:
		left, right, err := n.normalizePair(r.Left, r.Right)
		if err != nil {
			return nil, err
		}
		return Sequence{Left: left, Right: right}, nil
	case Alternation:
		left, right, err := n.normalizePair(r.Left, r.Right)
		if err != nil {
			return nil, err
		}
		return Alternation{Left: left, Right: right}, nil
	case KleeneStar:
		inner, err := n.normalize(r.Inner)
		if err != nil {
			return nil, err
		}
		return KleeneStar{Inner: inner}, nil
	case nil:
		return nil, fmt.Errorf("cannot normalize nil pattern")
	}
	panic(fmt.Sprintf("unknown pattern node type %T", node))
}

func (n *normalizer) normalizePair(l, r Node) (Node, Node, error) {
	left, err := n.normalize(l)
	if err != nil {
		return nil, nil, err
	}
	right, err := n.normalize(r)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (n *normalizer) resolve(name string) (Node, error) {
	if n.names == nil {
		return nil, &NameNotFoundError{Name: name, NoTable: true}
	}
	for _, p := range n.path {
		if p == name {
			path := append(append([]string{}, n.path...), name)
			return nil, &CyclicReferenceError{Path: path}
		}
	}
	def, ok := n.names[name]
	if !ok {
		return nil, &NameNotFoundError{Name: name}
	}
	tracer().Debugf("resolving name %q = %v", name, def)
	n.path = append(n.path, name)
	node, err := n.normalize(def)
	n.path = n.path[:len(n.path)-1]
	return node, err
}

func foldString(s []rune) Node {
	if len(s) == 0 {
		return Epsilon{}
	}
	return Sequence{Left: Literal{Char: s[0]}, Right: foldString(s[1:])}
}

func rangeSet(lo, hi rune) CharSet {
	if hi < lo {
		return CharSet{Chars: []rune{}}
	}
	set := make([]rune, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		set = append(set, c)
	}
	return CharSet{Chars: set}
}

// IsNormalized checks if a pattern consists of primitive nodes only.
func IsNormalized(node Node) bool {
	if node == nil || !node.IsPrimitive() {
		return false
	}
	switch r := node.(type) {
	case Sequence:
		return IsNormalized(r.Left) && IsNormalized(r.Right)
	case Alternation:
		return IsNormalized(r.Left) && IsNormalized(r.Right)
	case KleeneStar:
		return IsNormalized(r.Inner)
	}
	return true
}

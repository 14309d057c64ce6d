package regex

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// MaxChar is the largest character of the lexer alphabet. Input runes above MaxChar
// are legal, but complements (AllExcept) never contain them.
const MaxChar rune = 255

// Node is a node of a pattern tree. There is a fixed set of node variants,
// all of them defined in this package.
type Node interface {
	// IsPrimitive is true for node variants which may be compiled to an automaton
	// without further normalization.
	IsPrimitive() bool
	String() string
	isNode()
}

// --- Primitive nodes -------------------------------------------------------

// Epsilon matches the empty string.
type Epsilon struct{}

// Literal matches a single character.
type Literal struct {
	Char rune
}

// CharSet matches any single character out of a set. Chars are kept sorted and
// free of duplicates; use Chars, Set or Range to construct one.
type CharSet struct {
	Chars []rune
}

// Sequence matches Left followed by Right.
type Sequence struct {
	Left, Right Node
}

// Alternation matches either Left or Right.
type Alternation struct {
	Left, Right Node
}

// KleeneStar matches zero or more repetitions of Inner.
type KleeneStar struct {
	Inner Node
}

// --- Convenience nodes -----------------------------------------------------

// CharRange matches any character from Lo to Hi, inclusive.
type CharRange struct {
	Lo, Hi rune
}

// OneOrMore matches one or more repetitions of Inner.
type OneOrMore struct {
	Inner Node
}

// ZeroOrOne matches Inner or the empty string.
type ZeroOrOne struct {
	Inner Node
}

// LiteralString matches Text verbatim.
type LiteralString struct {
	Text string
}

// NamedRef is a reference to a pattern in a NameTable.
type NamedRef struct {
	Name string
}

// NameTable maps pattern names to patterns. It is consulted by Normalize only.
type NameTable map[string]Node

func (Epsilon) isNode()       {}
func (Literal) isNode()       {}
func (CharSet) isNode()       {}
func (Sequence) isNode()      {}
func (Alternation) isNode()   {}
func (KleeneStar) isNode()    {}
func (CharRange) isNode()     {}
func (OneOrMore) isNode()     {}
func (ZeroOrOne) isNode()     {}
func (LiteralString) isNode() {}
func (NamedRef) isNode()      {}

func (Epsilon) IsPrimitive() bool       { return true }
func (Literal) IsPrimitive() bool       { return true }
func (CharSet) IsPrimitive() bool       { return true }
func (Sequence) IsPrimitive() bool      { return true }
func (Alternation) IsPrimitive() bool   { return true }
func (KleeneStar) IsPrimitive() bool    { return true }
func (CharRange) IsPrimitive() bool     { return false }
func (OneOrMore) IsPrimitive() bool     { return false }
func (ZeroOrOne) IsPrimitive() bool     { return false }
func (LiteralString) IsPrimitive() bool { return false }
func (NamedRef) IsPrimitive() bool      { return false }

// === Constructors ==========================================================

// Eps returns an epsilon node.
func Eps() Node {
	return Epsilon{}
}

// Char returns a node matching character c.
func Char(c rune) Node {
	return Literal{Char: c}
}

// Chars returns a character set node for the given characters.
func Chars(cs ...rune) Node {
	set := make([]rune, len(cs))
	copy(set, cs)
	slices.Sort(set)
	return CharSet{Chars: slices.Compact(set)}
}

// Set returns a character set node for all the characters of s.
//
//    regex.Set(" \t\n\r")  // white space
//
func Set(s string) Node {
	return Chars([]rune(s)...)
}

// AllExcept returns a character set node with every character of the
// alphabet 0…MaxChar, except the ones given.
func AllExcept(cs ...rune) Node {
	set := make([]rune, 0, MaxChar+1)
	for c := rune(0); c <= MaxChar; c++ {
		if !slices.Contains(cs, c) {
			set = append(set, c)
		}
	}
	return CharSet{Chars: set}
}

// Range returns a node matching any character between lo and hi, inclusive.
func Range(lo, hi rune) Node {
	return CharRange{Lo: lo, Hi: hi}
}

// Seq returns a sequence node. More than two arguments are nested to the right,
// i.e. Seq(a, b, c) is Seq(a, Seq(b, c)). Seq() is Epsilon.
func Seq(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		return Epsilon{}
	case 1:
		return nodes[0]
	}
	return Sequence{Left: nodes[0], Right: Seq(nodes[1:]...)}
}

// Or returns an alternation node. More than two arguments are nested to the right.
// Or() is Epsilon.
func Or(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		return Epsilon{}
	case 1:
		return nodes[0]
	}
	return Alternation{Left: nodes[0], Right: Or(nodes[1:]...)}
}

// Star returns a node matching zero or more repetitions of n.
func Star(n Node) Node {
	return KleeneStar{Inner: n}
}

// Plus returns a node matching one or more repetitions of n.
func Plus(n Node) Node {
	return OneOrMore{Inner: n}
}

// Optional returns a node matching n or nothing.
func Optional(n Node) Node {
	return ZeroOrOne{Inner: n}
}

// Str returns a node matching the string s.
func Str(s string) Node {
	return LiteralString{Text: s}
}

// Name returns a reference to a named pattern.
func Name(name string) Node {
	return NamedRef{Name: name}
}

// === Debug output ==========================================================

func (Epsilon) String() string {
	return "ε"
}

func (l Literal) String() string {
	return fmt.Sprintf("%q", l.Char)
}

func (cs CharSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(cs.Chars); {
		j := i
		for j+1 < len(cs.Chars) && cs.Chars[j+1] == cs.Chars[j]+1 {
			j++
		}
		b.WriteString(charString(cs.Chars[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(charString(cs.Chars[j]))
		}
		i = j + 1
	}
	b.WriteByte(']')
	return b.String()
}

func (s Sequence) String() string {
	return fmt.Sprintf("(%s %s)", s.Left, s.Right)
}

func (a Alternation) String() string {
	return fmt.Sprintf("(%s | %s)", a.Left, a.Right)
}

func (k KleeneStar) String() string {
	return fmt.Sprintf("%s*", k.Inner)
}

func (r CharRange) String() string {
	return fmt.Sprintf("[%s-%s]", charString(r.Lo), charString(r.Hi))
}

func (o OneOrMore) String() string {
	return fmt.Sprintf("%s+", o.Inner)
}

func (z ZeroOrOne) String() string {
	return fmt.Sprintf("%s?", z.Inner)
}

func (s LiteralString) String() string {
	return fmt.Sprintf("%q", s.Text)
}

func (n NamedRef) String() string {
	return "{" + n.Name + "}"
}

// charString prints printable ASCII characters as they are, everything else in
// Go escape notation.
func charString(c rune) string {
	if c > ' ' && c < 0x7f {
		return string(c)
	}
	q := fmt.Sprintf("%q", c)
	return q[1 : len(q)-1]
}

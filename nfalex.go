package nfalex

import "fmt"

// TokType categorizes tokens. Applications define their own constants; the
// lexer package reserves only EOF (-1).
type TokType int

// TokTypeStringer prints token categories, e.g. for diagnostic output.
type TokTypeStringer func(TokType) string

// Token is the interface for tokens delivered to parsers.
//
// A token for a floating point literal could look like this:
//
//    TokType = Float       // application specific category
//    Lexeme  = "3.1416"    // the input text which has been matched
//    Value   = 3.1416      // float64, converted by the lexer's action
//    Span    = (67…73)     // rune positions in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span is a half-open interval [from, to) of rune positions within an input text.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span for the runes from…to-1.
func MakeSpan(from, to int) Span {
	if to < from {
		to = from
	}
	return Span{uint64(from), uint64(to)}
}

// From returns the position of the first rune of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the position just behind the last rune of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the number of runes covered.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Contains is true if rune position pos lies within s.
func (s Span) Contains(pos uint64) bool {
	return pos >= s[0] && pos < s[1]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Of returns the runes of input covered by s. Positions outside of input are
// clipped.
func (s Span) Of(input []rune) string {
	from, to := s[0], s[1]
	if n := uint64(len(input)); to > n {
		to = n
	}
	if from > to {
		return ""
	}
	return string(input[from:to])
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

package lexer

import (
	"strconv"

	"github.com/npillmayer/nfalex"
)

// Match is what an action gets to see of a successful match.
type Match struct {
	Lexeme  string      // the matched text
	Span    nfalex.Span // rune positions [start, end+1) of the match
	Pattern int         // serial number of the pattern, in order of Builder.Add
}

// Action creates a token value for a match. Actions may carry state of their own,
// e.g. a symbol table. Lexers shared between goroutines will call actions
// concurrently.
//
// Returning nil signals that the match should not be passed on to a parser (see
// TokenStream); a Scanner still reports it.
type Action interface {
	MakeToken(m Match) interface{}
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(m Match) interface{}

// MakeToken calls f(m).
func (f ActionFunc) MakeToken(m Match) interface{} {
	return f(m)
}

// Skip is a pre-defined action which ignores the scanned match.
var Skip Action = ActionFunc(func(Match) interface{} {
	return nil
})

// MakeToken is a pre-defined action which wraps a scanned match into a DefaultToken.
func MakeToken(typ nfalex.TokType) Action {
	return ActionFunc(func(m Match) interface{} {
		return DefaultToken{kind: typ, lexeme: m.Lexeme, span: m.Span}
	})
}

// ConvertToken is a pre-defined action which wraps a scanned match into a
// DefaultToken, with a value converted from the lexeme.
func ConvertToken(typ nfalex.TokType, convert func(lexeme string) interface{}) Action {
	return ActionFunc(func(m Match) interface{} {
		return DefaultToken{kind: typ, lexeme: m.Lexeme, span: m.Span, Val: convert(m.Lexeme)}
	})
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the pre-defined
// actions.
type DefaultToken struct {
	kind   nfalex.TokType
	lexeme string
	Val    interface{}
	span   nfalex.Span
}

var _ nfalex.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ nfalex.TokType, lexeme string, span nfalex.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() nfalex.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() nfalex.Span {
	return t.span
}

// --- Value conversions -----------------------------------------------------

// IntValue returns a conversion for ConvertToken, parsing decimal integers of the
// given bit size into int64. If the lexeme does not fit, the lexeme itself is
// kept as the token's value and the failure is traced.
func IntValue(bitSize int) func(lexeme string) interface{} {
	return func(lexeme string) interface{} {
		n, err := strconv.ParseInt(lexeme, 10, bitSize)
		if err != nil {
			tracer().Errorf("cannot convert %q: %v", lexeme, err)
			return lexeme
		}
		return n
	}
}

// FloatValue returns a conversion for ConvertToken, parsing floats of the given
// bit size into float64. Failing lexemes are kept as they are, as with IntValue.
func FloatValue(bitSize int) func(lexeme string) interface{} {
	return func(lexeme string) interface{} {
		f, err := strconv.ParseFloat(lexeme, bitSize)
		if err != nil {
			tracer().Errorf("cannot convert %q: %v", lexeme, err)
			return lexeme
		}
		return f
	}
}

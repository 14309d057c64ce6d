package lexer

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/nfalex"
)

// EOF is the token type of the token a TokenStream delivers at end of input.
// It is identical to text/scanner.EOF.
const EOF = nfalex.TokType(scanner.EOF)

// Tokenizer is a scanner interface for parsers.
type Tokenizer interface {
	NextToken() nfalex.Token
	SetErrorHandler(func(error))
}

// TokenStream wraps a Scanner into a Tokenizer. It filters out skipped matches
// (i.e., nil tokens) and passes recognition errors to an error handler.
// After end of input, NextToken returns a token of type EOF, repeatedly.
type TokenStream struct {
	scanner *Scanner
	Error   func(error) // error handler
}

var _ Tokenizer = (*TokenStream)(nil)

// Default error reporting function for token streams
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Tokens creates a token stream for text.
func (lx *Lexer) Tokens(text string) *TokenStream {
	return NewTokenStream(lx.Scan(text))
}

// NewTokenStream wraps a scanner.
func NewTokenStream(s *Scanner) *TokenStream {
	return &TokenStream{scanner: s, Error: logError}
}

// SetErrorHandler sets an error handler for the token stream.
func (ts *TokenStream) SetErrorHandler(h func(error)) {
	if h == nil {
		ts.Error = logError
		return
	}
	ts.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Actions have to produce values implementing nfalex.Token to be passed on.
// Other non-nil values are reported to the error handler and dropped.
func (ts *TokenStream) NextToken() nfalex.Token {
	for {
		tok, err, eof := ts.scanner.Next()
		if eof {
			tracer().Debugf("TokenStream reached end of input")
			pos := uint64(ts.scanner.Position())
			return MakeDefaultToken(EOF, "", nfalex.Span{pos, pos})
		}
		if err != nil {
			ts.Error(err)
			continue
		}
		if tok == nil {
			continue
		}
		if t, ok := tok.(nfalex.Token); ok {
			return t
		}
		ts.Error(fmt.Errorf("action produced %T, which is not a token", tok))
	}
}

package lexer

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/nfalex"
	"github.com/npillmayer/nfalex/nfa"
)

// RecognitionError is reported by a scanner if no pattern matches any prefix of
// the input starting at Position. The scanner skips exactly one character and
// continues.
type RecognitionError struct {
	Position int  // rune position of the offending character
	Char     rune // the offending character
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("unknown token at position %d", e.Position)
}

// Scanner scans an input text for tokens. Scanners are created by Lexer.Scan.
// A scanner is forward-only and not safe for concurrent use; the lexer it has
// been created from is.
type Scanner struct {
	lexer  *Lexer
	input  []rune
	cursor int
	last   *Match
}

// attempt is a record of the scan history: after consuming input[start..end]
// the automaton is in states.
type attempt struct {
	start, end int
	states     *nfa.StateSet
}

// Next returns the next token of the input. Tokens are whatever the action bound
// to the matching pattern creates, including nil for Skip.
//
// If no pattern matches at the current position, Next returns a *RecognitionError
// and skips one character. At end of input, eof is true, and will stay true for
// all subsequent calls. The signature follows the scanners of lexmachine.
func (s *Scanner) Next() (tok interface{}, err error, eof bool) {
	if s.cursor >= len(s.input) {
		return nil, nil, true
	}
	A := s.lexer.automaton
	start := s.cursor
	history := arraystack.New()
	current := s.lexer.start
	for idx := start; idx < len(s.input); idx++ {
		reached := A.EpsilonClosure(A.Step(current, s.input[idx]))
		history.Push(attempt{start: start, end: idx, states: reached})
		if reached.Empty() {
			break
		}
		current = reached
	}
	for !history.Empty() {
		x, _ := history.Pop()
		a := x.(attempt)
		final, ok := A.FinalsIn(a.states).Min()
		if !ok {
			continue
		}
		b := s.lexer.bindings[final]
		span := nfalex.MakeSpan(a.start, a.end+1)
		m := Match{
			Lexeme:  span.Of(s.input),
			Span:    span,
			Pattern: b.pattern,
		}
		s.cursor = a.end + 1
		s.last = &m
		tracer().Debugf("pattern #%d matched %q at %v", m.Pattern, m.Lexeme, m.Span)
		return b.action.MakeToken(m), nil, false
	}
	s.cursor = start + 1
	s.last = nil
	err = &RecognitionError{Position: start, Char: s.input[start]}
	tracer().Debugf("%v: %q", err, s.input[start])
	return nil, err, false
}

// Position returns the rune position the next call to Next will start from.
func (s *Scanner) Position() int {
	return s.cursor
}

// LastMatch returns the match which produced the most recent token. It returns
// false if the last call to Next did not recognize a token.
func (s *Scanner) LastMatch() (Match, bool) {
	if s.last == nil {
		return Match{}, false
	}
	return *s.last, true
}

// Result is an element of the result sequence of a scan. Exactly one of Token
// and Err is set, except for tokens created by Skip.
type Result struct {
	Token interface{}
	Err   error
}

// Collect drains the scanner and returns all results up to end of input.
func (s *Scanner) Collect() []Result {
	var results []Result
	for {
		tok, err, eof := s.Next()
		if eof {
			return results
		}
		results = append(results, Result{Token: tok, Err: err})
	}
}

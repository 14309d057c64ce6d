package lexer

import (
	"github.com/npillmayer/nfalex/nfa"
)

// Lexer is a compiled set of patterns together with their actions.
// Lexers are immutable and may be shared between any number of scanners,
// running concurrently.
type Lexer struct {
	automaton *nfa.Automaton
	bindings  map[nfa.StateID]binding
	patterns  int
	start     *nfa.StateSet // epsilon closure of the initial state
}

type binding struct {
	pattern int
	action  Action
}

// Automaton returns the automaton a lexer is driven by.
func (lx *Lexer) Automaton() *nfa.Automaton {
	return lx.automaton
}

// PatternCount returns the number of patterns the lexer has been built from.
func (lx *Lexer) PatternCount() int {
	return lx.patterns
}

// Scan creates a new scanner for text. Creating a scanner is cheap; to re-scan
// a text, create a new scanner.
func (lx *Lexer) Scan(text string) *Scanner {
	return &Scanner{
		lexer: lx,
		input: []rune(text),
	}
}


package lexer

import (
	"errors"
	"fmt"

	"github.com/npillmayer/nfalex/nfa"
	"github.com/npillmayer/nfalex/regex"
)

// ErrDuplicateBinding is returned by Build if two patterns claim the same final
// state. This indicates a broken state allocation and should never happen.
var ErrDuplicateBinding = errors.New("final state is already bound to an action")

// Builder collects patterns and their actions. The order in which patterns are
// added is significant: for matches of equal length, the pattern added first wins.
//
// A Builder may be used to build more than one lexer. Builders are not safe for
// concurrent use.
type Builder struct {
	names    regex.NameTable
	patterns []pattern
}

type pattern struct {
	node   regex.Node
	action Action
}

// NewBuilder creates a builder. Patterns may refer to entries of names by
// regex.Name. names may be nil.
func NewBuilder(names regex.NameTable) *Builder {
	return &Builder{names: names}
}

// Add appends a pattern with an action. A nil action is treated as Skip.
// Returns the builder for chaining.
func (b *Builder) Add(node regex.Node, action Action) *Builder {
	if action == nil {
		action = Skip
	}
	b.patterns = append(b.patterns, pattern{node: node, action: action})
	return b
}

// Build normalizes and compiles all patterns and combines them into a lexer.
// If any pattern fails to normalize, no lexer is created and the error is
// returned, wrapped with the pattern's index.
func (b *Builder) Build() (*Lexer, error) {
	alloc := nfa.NewAllocator()
	fragments := make([]*nfa.Automaton, 0, len(b.patterns))
	bindings := make(map[nfa.StateID]binding)
	for i, p := range b.patterns {
		norm, err := regex.Normalize(p.node, b.names)
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i, err)
		}
		A, err := nfa.Compile(norm, alloc)
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i, err)
		}
		var dup error
		A.Finals().Each(func(id nfa.StateID) {
			if _, exists := bindings[id]; exists && dup == nil {
				dup = fmt.Errorf("pattern #%d, state %d: %w", i, id, ErrDuplicateBinding)
				return
			}
			bindings[id] = binding{pattern: i, action: p.action}
		})
		if dup != nil {
			return nil, dup
		}
		fragments = append(fragments, A)
	}
	A := nfa.Union(fragments, alloc)
	lx := &Lexer{
		automaton: A,
		bindings:  bindings,
		patterns:  len(b.patterns),
		start:     A.EpsilonClosure(nfa.NewStateSet(A.Initial())),
	}
	tracer().Debugf("built lexer with %d patterns, %d final states", lx.patterns, len(bindings))
	return lx, nil
}

package lexer

import (
	"fmt"
	"sync"

	"github.com/npillmayer/nfalex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Tags ------------------------------------------------------------------

// Tag is an entry of a symbol table. The name 'Tag' avoids confusion with the
// symbols of an automaton's alphabet.
type Tag struct {
	name   string
	Serial int         // order of first occurrence, starting at 0
	Count  int         // number of occurrences so far
	UData  interface{} // user data
}

// Name gets the tag's name.
func (tag *Tag) Name() string {
	return tag.name
}

// String is a debug Stringer for tags.
func (tag *Tag) String() string {
	return fmt.Sprintf("<tag '%s' #%d ×%d>", tag.name, tag.Serial, tag.Count)
}

// === Symbol Tables =========================================================

// SymbolTable interns lexemes, e.g. identifiers. It is safe for concurrent use,
// as actions of a shared lexer may be called from more than one scanner at a time.
type SymbolTable struct {
	sync.Mutex
	table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (t *SymbolTable) ResolveTag(name string) *Tag {
	t.Lock()
	defer t.Unlock()
	return t.table[name]
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag has already been present.
// Every call counts as an occurrence of name.
func (t *SymbolTable) ResolveOrDefineTag(name string) (*Tag, bool) {
	t.Lock()
	defer t.Unlock()
	tag, found := t.table[name]
	if !found {
		tag = &Tag{name: name, Serial: len(t.table)}
		t.table[name] = tag
	}
	tag.Count++
	return tag, found
}

// Size returns the number of tags in the table.
func (t *SymbolTable) Size() int {
	t.Lock()
	defer t.Unlock()
	return len(t.table)
}

// Each calls f for every tag, in order of first occurrence.
func (t *SymbolTable) Each(f func(tag *Tag)) {
	t.Lock()
	tags := maps.Values(t.table)
	t.Unlock()
	slices.SortFunc(tags, func(a, b *Tag) int {
		return a.Serial - b.Serial
	})
	for _, tag := range tags {
		f(tag)
	}
}

// Intern is an action which creates DefaultTokens carrying the lexeme's tag in
// t as value.
func (t *SymbolTable) Intern(typ nfalex.TokType) Action {
	return ActionFunc(func(m Match) interface{} {
		tag, _ := t.ResolveOrDefineTag(m.Lexeme)
		return DefaultToken{kind: typ, lexeme: m.Lexeme, span: m.Span, Val: tag}
	})
}

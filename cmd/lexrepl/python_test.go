package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/nfalex"
	"github.com/npillmayer/nfalex/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type pyTok struct {
	Type   string
	Lexeme string
}

func scanPython(t *testing.T, input string) ([]pyTok, *lexer.SymbolTable) {
	t.Helper()
	symtab := lexer.NewSymbolTable()
	lx, err := pythonLexer(symtab)
	if err != nil {
		t.Fatalf("cannot build demo lexer: %v", err)
	}
	var toks []pyTok
	ts := lx.Tokens(input)
	ts.SetErrorHandler(func(e error) {
		toks = append(toks, pyTok{"error", e.Error()})
	})
	for token := ts.NextToken(); token.TokType() != lexer.EOF; token = ts.NextToken() {
		toks = append(toks, pyTok{pyTokTypeStringer(token.TokType()), token.Lexeme()})
	}
	return toks, symtab
}

func TestPythonLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.repl")
	defer teardown()
	//
	toks, symtab := scanPython(t, "def fib(n): # naive\n  return n if n <= 1 else fib(n-1) + fib(n-2)\n")
	expected := []pyTok{
		{"Keyword", "def"}, {"Identifier", "fib"}, {"Separator", "("}, {"Identifier", "n"},
		{"Separator", ")"}, {"Separator", ":"}, {"Comment", "# naive\n"},
		{"Keyword", "return"}, {"Identifier", "n"}, {"Keyword", "if"}, {"Identifier", "n"},
		{"Operator", "<="}, {"Int", "1"}, {"Keyword", "else"}, {"Identifier", "fib"},
		{"Separator", "("}, {"Identifier", "n"}, {"Operator", "-"}, {"Int", "1"},
		{"Separator", ")"}, {"Operator", "+"}, {"Identifier", "fib"}, {"Separator", "("},
		{"Identifier", "n"}, {"Operator", "-"}, {"Int", "2"}, {"Separator", ")"},
	}
	if diff := cmp.Diff(expected, toks); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
	if symtab.Size() != 2 {
		t.Errorf("expected identifiers 'fib' and 'n' to be interned, have %d symbols", symtab.Size())
	}
}

func TestPythonLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfalex.repl")
	defer teardown()
	//
	toks, _ := scanPython(t, `x **= 3.25 // .5 ; s = 'it' + "is" ? _y2`)
	expected := []pyTok{
		{"Identifier", "x"}, {"Operator", "**="}, {"Float", "3.25"}, {"Operator", "//"},
		{"Float", ".5"}, {"Separator", ";"}, {"Identifier", "s"}, {"Operator", "="},
		{"String", "'it'"}, {"Operator", "+"}, {"String", `"is"`},
		{"error", "unknown token at position 35"}, {"Identifier", "_y2"},
	}
	if diff := cmp.Diff(expected, toks); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
	if pyTokTypeStringer(nfalex.TokType(77)) != "77" {
		t.Errorf("unknown token types should print as numbers")
	}
}

package main

import (
	"strconv"

	"github.com/npillmayer/nfalex"
	"github.com/npillmayer/nfalex/lexer"
	"github.com/npillmayer/nfalex/regex"
)

// Token types of the demo lexer for a Python-like language.
const (
	Keyword nfalex.TokType = iota + 1
	Operator
	Separator
	IntLiteral
	FloatLiteral
	StrLiteral
	Identifier
	Comment
)

var pyTokenNames = map[nfalex.TokType]string{
	Keyword:      "Keyword",
	Operator:     "Operator",
	Separator:    "Separator",
	IntLiteral:   "Int",
	FloatLiteral: "Float",
	StrLiteral:   "String",
	Identifier:   "Identifier",
	Comment:      "Comment",
	lexer.EOF:    "EOF",
}

var pyKeywords = []string{
	"for", "in", "while", "del", "if", "else", "elif", "with", "import", "from", "as",
	"assert", "break", "continue", "class", "def", "except", "False", "True", "not",
	"and", "or", "None", "finally", "global", "is", "lambda", "try", "return", "yield",
	"pass", "raise", "nonlocal",
}

var pyOperators = []string{
	"=", "==", ">=", ">", "<", "<=", "!=", "+", "-", "*", "**", "/", "%", "//", ">>",
	"<<", "^", "+=", "-=", "*=", "**=", "/=", "%=", "//=", "^=", "<<=", ">>=", "&=",
	"|=", ":=",
}

var pySeparators = []string{
	":", ";", ",", "\\", ".", "(", ")", "[", "]", "{", "}", "!", "~", "&", "<>",
}

func pyTokTypeStringer(t nfalex.TokType) string {
	if name, ok := pyTokenNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// pythonLexer builds the demo lexer. Identifiers are interned in symtab.
// Keywords are added before identifiers, so keywords win over identifiers of the
// same length.
func pythonLexer(symtab *lexer.SymbolTable) (*lexer.Lexer, error) {
	b := lexer.NewBuilder(regex.NameTable{
		"whitespace":  regex.Set(" \t\n\r"),
		"letter":      regex.Or(regex.Range('a', 'z'), regex.Range('A', 'Z')),
		"digit":       regex.Range('0', '9'),
		"digits":      regex.Star(regex.Name("digit")),
		"any":         regex.Range(0, 126),
		"letter_or_":  regex.Or(regex.Name("letter"), regex.Char('_')),
		"identifier":  regex.Seq(regex.Name("letter_or_"), regex.Star(regex.Or(regex.Name("digit"), regex.Name("letter_or_")))),
		"dq_string":   regex.Seq(regex.Char('"'), regex.Star(regex.AllExcept('"')), regex.Char('"')),
		"sq_string":   regex.Seq(regex.Char('\''), regex.Star(regex.AllExcept('\'')), regex.Char('\'')),
		"long_string": regex.Or(
			regex.Seq(regex.Str("'''"), regex.Star(regex.Name("any")), regex.Str("'''")),
			regex.Seq(regex.Str(`"""`), regex.Star(regex.Name("any")), regex.Str(`"""`))),
	})
	b.Add(regex.Name("whitespace"), lexer.Skip)
	for _, kw := range pyKeywords {
		b.Add(regex.Str(kw), lexer.MakeToken(Keyword))
	}
	for _, op := range pyOperators {
		b.Add(regex.Str(op), lexer.MakeToken(Operator))
	}
	for _, sep := range pySeparators {
		b.Add(regex.Str(sep), lexer.MakeToken(Separator))
	}
	b.Add(regex.Plus(regex.Name("digit")), lexer.ConvertToken(IntLiteral, lexer.IntValue(32)))
	b.Add(regex.Seq(regex.Name("digits"), regex.Char('.'), regex.Name("digits")),
		lexer.ConvertToken(FloatLiteral, lexer.FloatValue(32)))
	b.Add(regex.Or(regex.Name("dq_string"), regex.Name("sq_string"), regex.Name("long_string")),
		lexer.MakeToken(StrLiteral))
	b.Add(regex.Name("identifier"), symtab.Intern(Identifier))
	b.Add(regex.Seq(regex.Char('#'), regex.Star(regex.AllExcept('\n', '\r')), regex.Set("\n\r")),
		lexer.MakeToken(Comment))
	return b.Build()
}

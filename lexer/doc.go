/*
Package lexer builds lexical scanners from lists of patterns and scans input text
into tokens.

Clients create a Builder, optionally with a table of named patterns, and add
patterns together with actions. Actions create a token from the text matched by
the pattern:

    b := lexer.NewBuilder(regex.NameTable{
        "letter": regex.Or(regex.Range('a', 'z'), regex.Range('A', 'Z')),
        "digit":  regex.Range('0', '9'),
    })
    b.Add(regex.Set(" \t\n"), lexer.Skip)
    b.Add(regex.Str("if"), lexer.MakeToken(IF))
    b.Add(regex.Plus(regex.Name("letter")), lexer.MakeToken(IDENT))
    b.Add(regex.Plus(regex.Name("digit")), lexer.ConvertToken(NUM, atoi))
    lx, err := b.Build()

A Lexer is immutable and may be shared between goroutines. For each input text
a new Scanner is created:

    scan := lx.Scan("if x then 42")
    for {
        tok, err, eof := scan.Next()
        if eof {
            break
        }
        …
    }

Scanning always selects the longest prefix of the remaining input which matches
any pattern. If two patterns match a prefix of the same length, the pattern added
to the builder first wins. Characters which do not start any match are reported
as RecognitionError, one character at a time; scanning continues behind them.

Parsers which prefer a stream of tokens with white space and errors filtered out
may wrap a scanner into a TokenStream.

Lexer specifications may also be loaded from YAML, see LoadSpec.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfalex.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("nfalex.lexer")
}

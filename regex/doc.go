/*
Package regex defines the abstract syntax of lexical patterns.

There is no textual regex syntax. Patterns are built with constructor functions:

    digit := regex.Range('0', '9')
    ident := regex.Seq(regex.Name("letter"), regex.Star(regex.Or(regex.Name("letter"), digit)))
    kw    := regex.Str("while")

Five operators are primitive: Epsilon, Literal, CharSet, Sequence, Alternation and Star
(Epsilon counting as the empty primitive). All other forms (Range, Plus, Optional, Str
and Name) are convenience forms and are expanded by Normalize. Named references
are resolved against a NameTable; unknown names and cyclic references are reported
as errors.

Characters are runes, but the lexer is intended for an extended-ASCII alphabet of
runes 0…MaxChar. AllExcept computes complements with respect to this alphabet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfalex.regex'.
func tracer() tracing.Trace {
	return tracing.Select("nfalex.regex")
}

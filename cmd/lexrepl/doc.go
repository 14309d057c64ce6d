/*
Package lexrepl/main provides an interactive command line tool for lexers built
with nfalex. Every line entered is scanned and the resulting tokens and
recognition errors are printed. Without further configuration, a lexer for a
Python-like language is used; with flag -spec, a lexer is loaded from a YAML
specification (see lexer.LoadSpec).

Files given as arguments are scanned one after the other, without going into
interactive mode.

    lexrepl [-trace Debug] [-spec lexer.yaml] [-dot nfa.dot] [-init lines.txt] [file …]

Lines starting with a colon are commands:

    :symbols      print identifiers interned so far (demo lexer only)
    :dot <file>   export the lexer's automaton in GraphViz format
    :digest       print a fingerprint of the lexer's automaton
    :quit         leave

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfalex.repl'
func tracer() tracing.Trace {
	return tracing.Select("nfalex.repl")
}

/*
Package nfalex is a toolbox for building lexical scanners from regular
expressions.

Patterns are written with a small constructor vocabulary, compiled into a single
non-deterministic finite automaton and then used to split input text into tokens,
always preferring the longest match. Package structure is as follows:

■ regex: Package regex defines the pattern AST and normalizes convenience forms
(ranges, strings, named references, …) into five primitive operators.

■ nfa: Package nfa implements Thompson construction, union of automata and NFA
simulation (epsilon closure and transitions on state sets).

■ lexer: Package lexer binds patterns to token actions, builds a lexer and
scans input text with maximal munch.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfalex

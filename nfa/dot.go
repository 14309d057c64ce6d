package nfa

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// ToGraphViz exports an automaton to the Graphviz Dot format.
// Final states are drawn as double circles. Parallel transitions between two
// states are collapsed into a single edge, labeled with character ranges.
func (A *Automaton) ToGraphViz(w io.Writer) error {
	type edge struct{ from, to StateID }
	labels := map[edge][]Symbol{}
	A.table.Each(func(from StateID, sym Symbol, to []StateID) {
		for _, t := range to {
			e := edge{from, t}
			labels[e] = append(labels[e], sym)
		}
	})
	edges := maps.Keys(labels)
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].from < edges[j].from ||
			edges[i].from == edges[j].from && edges[i].to < edges[j].to
	})
	var b strings.Builder
	b.WriteString(`digraph {
graph [rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=circle, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	b.WriteString(fmt.Sprintf("start [shape=point]\nstart -> s%03d\n", A.initial))
	A.finals.Each(func(id StateID) {
		b.WriteString(fmt.Sprintf("s%03d [shape=doublecircle, style=filled, fillcolor=lightgray]\n", id))
	})
	for _, e := range edges {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.from, e.to,
			symbolsLabel(labels[e])))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// symbolsLabel creates an edge label from a sorted list of symbols.
func symbolsLabel(syms []Symbol) string {
	var parts []string
	for i := 0; i < len(syms); {
		j := i
		for j+1 < len(syms) && syms[j+1] == syms[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, symbolLabel(syms[i])+"-"+symbolLabel(syms[j]))
		} else {
			parts = append(parts, symbolLabel(syms[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

func symbolLabel(sym Symbol) string {
	switch {
	case sym == Epsilon:
		return "ε"
	case sym == '"' || sym == '\\':
		return `\` + string(sym)
	case sym > ' ' && sym < 0x7f:
		return string(sym)
	}
	return fmt.Sprintf("#%d", sym)
}

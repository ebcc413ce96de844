package automaton

import (
	"fmt"
	"io"
)

// WriteDOT renders d as Graphviz source: a doublecircle for accepting
// states, a single circle otherwise, and one labelled edge per transition.
func (d *DFA) WriteDOT(w io.Writer) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "\trankdir=LR;")
	for s := 0; s < d.StateCount; s++ {
		shape := "circle"
		if d.Accepting[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\tq%d [shape=%s];\n", s, shape)
	}
	d.Walk(func(from, to int, label byte) {
		fmt.Fprintf(w, "\tq%d -> q%d [label=%q];\n", from, to, string(label))
	})
	fmt.Fprintf(w, "\t_start [shape=point]; _start -> q%d;\n", d.Initial)
	fmt.Fprintln(w, "}")
}

// WriteDOT renders n as Graphviz source, with an "ε" edge label for
// empty-string transitions.
func (n *NFA) WriteDOT(w io.Writer) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "\trankdir=LR;")
	for s := 0; s < n.StateCount; s++ {
		shape := "circle"
		if n.Accepting[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\tn%d [shape=%s];\n", s, shape)
	}
	n.Walk(func(from, to int, label string) {
		text := label
		if text == "" {
			text = "ε"
		}
		fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", from, to, text)
	})
	fmt.Fprintf(w, "\t_start [shape=point]; _start -> n%d;\n", n.Initial)
	fmt.Fprintln(w, "}")
}

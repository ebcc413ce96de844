package automaton

import "relab/reast"

// singleAcceptingIndex returns the (unique, by Thompson-construction
// invariant) accepting state of n.
func singleAcceptingIndex(n *NFA) int {
	for i, acc := range n.Accepting {
		if acc {
			return i
		}
	}
	return -1
}

type thompsonVisitor struct{}

func (thompsonVisitor) VisitNone() *NFA {
	n := NewNFA()
	n.AddState()
	n.AddState()
	n.SetInitial(0)
	n.SetAccepting(1, true)
	return n
}

func (thompsonVisitor) VisitEmpty() *NFA {
	n := NewNFA()
	a := n.AddState()
	b := n.AddState()
	n.SetInitial(a)
	n.AddTransition(a, "", b)
	n.SetAccepting(b, true)
	return n
}

func (thompsonVisitor) VisitLiteral(sym byte) *NFA {
	n := NewNFA()
	a := n.AddState()
	b := n.AddState()
	n.SetInitial(a)
	n.AddTransition(a, string(sym), b)
	n.SetAccepting(b, true)
	return n
}

// VisitConcat merges left then right, right's states renumbered by
// |left|: left's old accepting state gets an ε-edge to right's old
// initial, and the merged accepting state is right's (renumbered).
func (thompsonVisitor) VisitConcat(left, right *NFA) *NFA {
	out := NewNFA()
	for i := 0; i < left.StateCount; i++ {
		out.AddState()
	}
	for i := 0; i < left.StateCount; i++ {
		for _, t := range left.Trans[i] {
			out.AddTransition(i, t.Label, t.To)
		}
	}
	out.SetInitial(left.Initial)

	offset := left.StateCount
	for i := 0; i < right.StateCount; i++ {
		out.AddState()
	}
	for i := 0; i < right.StateCount; i++ {
		for _, t := range right.Trans[i] {
			out.AddTransition(offset+i, t.Label, offset+t.To)
		}
	}

	leftAccept := singleAcceptingIndex(left)
	out.AddTransition(leftAccept, "", offset+right.Initial)
	rightAccept := singleAcceptingIndex(right)
	out.SetAccepting(offset+rightAccept, true)
	return out
}

// VisitAlt builds a fresh initial state with ε-edges to both components'
// initials (offset by 1, then 1+|left|), and a fresh accepting state
// reached by ε from both components' accepting states.
func (thompsonVisitor) VisitAlt(left, right *NFA) *NFA {
	out := NewNFA()
	s0 := out.AddState()
	offsetA := 1
	for i := 0; i < left.StateCount; i++ {
		out.AddState()
	}
	offsetB := offsetA + left.StateCount
	for i := 0; i < right.StateCount; i++ {
		out.AddState()
	}
	accept := out.AddState()
	out.SetInitial(s0)

	for i := 0; i < left.StateCount; i++ {
		for _, t := range left.Trans[i] {
			out.AddTransition(offsetA+i, t.Label, offsetA+t.To)
		}
	}
	for i := 0; i < right.StateCount; i++ {
		for _, t := range right.Trans[i] {
			out.AddTransition(offsetB+i, t.Label, offsetB+t.To)
		}
	}

	out.AddTransition(s0, "", offsetA+left.Initial)
	out.AddTransition(s0, "", offsetB+right.Initial)
	out.AddTransition(offsetA+singleAcceptingIndex(left), "", accept)
	out.AddTransition(offsetB+singleAcceptingIndex(right), "", accept)
	out.SetAccepting(accept, true)
	return out
}

// VisitStar reuses a fresh initial state as the sole accepting state too,
// with ε-edges out to the operand's initial and back in from the
// operand's accepting state.
func (thompsonVisitor) VisitStar(child *NFA) *NFA {
	out := NewNFA()
	s0 := out.AddState()
	offset := 1
	for i := 0; i < child.StateCount; i++ {
		out.AddState()
	}
	for i := 0; i < child.StateCount; i++ {
		for _, t := range child.Trans[i] {
			out.AddTransition(offset+i, t.Label, offset+t.To)
		}
	}
	out.SetInitial(s0)
	out.AddTransition(s0, "", offset+child.Initial)
	out.AddTransition(offset+singleAcceptingIndex(child), "", s0)
	out.SetAccepting(s0, true)
	return out
}

// FromRegex builds a single-accepting-state NFA from r via Thompson
// construction, driven by the RE visitor's generic post-order fold.
func FromRegex(r *reast.Node) *NFA {
	return reast.Fold[*NFA](r, thompsonVisitor{})
}

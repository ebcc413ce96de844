package automaton

import (
	"fmt"

	"relab/reast"
	"relab/rerrors"
)

// ToRegex converts n to an equivalent regular expression by state
// elimination (McNaughton–Yamada): n is first viewed as a complete
// directed graph whose edge label R[i][j] is an RE (∅ where no edge
// exists, seeded from literal symbols and ε edges), then every
// non-initial, non-accepting state k is eliminated in ascending id order —
// observable in the printed result, though it does not affect the
// language — by routing every path through k into
// R[i][j] += R[i][k]·(R[k][k])*·R[k][j] before zeroing every edge that
// touched k. Every + / · / * goes through reast's smart constructors so ∅
// and ε simplify away as they're produced.
//
// Precondition: every transition label has length 0 or 1 (call
// SplitTransitions and RemoveEpsilon as needed beforehand if it doesn't —
// ToRegex does not run them itself) and there is at most one accepting
// state (call MakeSingleAccepting first if there's more than one).
func (n *NFA) ToRegex() (*reast.Node, error) {
	size := n.StateCount
	for s := 0; s < size; s++ {
		for _, t := range n.Trans[s] {
			if len(t.Label) >= 2 {
				return nil, fmt.Errorf("automaton: ToRegex: state %d has label %q: %w",
					s, t.Label, rerrors.BadTransitionLabelLength)
			}
		}
	}

	finals := n.AcceptingStates()
	if len(finals) == 0 {
		return reast.None(), nil
	}
	if len(finals) > 1 {
		return nil, fmt.Errorf("automaton: ToRegex: %d accepting states: %w", len(finals), rerrors.MultipleAcceptingStates)
	}
	final := finals[0]
	initial := n.Initial

	r := make([][]*reast.Node, size)
	for i := range r {
		r[i] = make([]*reast.Node, size)
		for j := range r[i] {
			r[i][j] = reast.None()
		}
	}
	for i := 0; i < size; i++ {
		for _, t := range n.Trans[i] {
			var term *reast.Node
			if t.Label == "" {
				term = reast.Empty()
			} else {
				term = reast.Literal(t.Label[0])
			}
			reast.AltAssign(&r[i][t.To], term)
		}
	}

	for k := 0; k < size; k++ {
		if k == initial || k == final {
			continue
		}
		middle := reast.Iterate(r[k][k])
		for i := 0; i < size; i++ {
			if i == k {
				continue
			}
			rik := r[i][k]
			if reast.IsNone(rik) {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k {
					continue
				}
				rkj := r[k][j]
				if reast.IsNone(rkj) {
					continue
				}
				expr := reast.Concat(reast.Concat(rik, middle), rkj)
				reast.AltAssign(&r[i][j], expr)
			}
		}
		for i := 0; i < size; i++ {
			r[i][k] = reast.None()
			r[k][i] = reast.None()
		}
	}

	if initial == final {
		return reast.Iterate(r[initial][initial]), nil
	}
	p := reast.Concat(reast.Iterate(r[initial][initial]), r[initial][final])
	loop := reast.Iterate(reast.Alt(r[final][final], reast.Concat(r[final][initial], p)))
	return reast.Concat(p, loop), nil
}

package automaton

import (
	"fmt"
	"sort"
	"strings"

	"relab/rerrors"
)

func subsetKey(states []int) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ",")
}

func anyAccepting(n *NFA, states []int) bool {
	for _, s := range states {
		if n.Accepting[s] {
			return true
		}
	}
	return false
}

// DeterminizeSingleLetter runs subset construction over n, which must have
// every transition label exactly one symbol long (run RemoveEpsilon then
// SplitTransitions first, or call Determinize which does both). Subsets
// are discovered breadth-first from {Initial}; each new subset is assigned
// the next DFA state id in that first-encountered order — a contract later
// code and tests rely on, not an incidental BFS detail. Within one subset's
// frontier expansion, outgoing symbols are visited in descending byte order
// — the tie-break pinned by the canonical worked example, reproduced in
// TestDeterminizeWorkedExample.
func (n *NFA) DeterminizeSingleLetter() (*DFA, error) {
	for s := 0; s < n.StateCount; s++ {
		for _, t := range n.Trans[s] {
			if len(t.Label) != 1 {
				return nil, fmt.Errorf("automaton: DeterminizeSingleLetter: state %d has label %q: %w",
					s, t.Label, rerrors.NotSingleLetter)
			}
		}
	}

	out := NewDFA()
	idOf := make(map[string]int)
	var subsets [][]int

	initSet := []int{n.Initial}
	initID := out.AddState()
	idOf[subsetKey(initSet)] = initID
	subsets = append(subsets, initSet)
	out.SetInitial(initID)
	out.SetAccepting(initID, anyAccepting(n, initSet))

	queue := []int{initID}
	for len(queue) > 0 {
		curID := queue[0]
		queue = queue[1:]
		curSet := subsets[curID]

		symbols := make(map[byte]struct{})
		for _, s := range curSet {
			for _, t := range n.Trans[s] {
				symbols[t.Label[0]] = struct{}{}
			}
		}
		syms := make([]byte, 0, len(symbols))
		for sym := range symbols {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] > syms[j] })

		for _, sym := range syms {
			seen := make(map[int]bool)
			var targets []int
			for _, s := range curSet {
				for _, t := range n.Trans[s] {
					if t.Label[0] == sym && !seen[t.To] {
						seen[t.To] = true
						targets = append(targets, t.To)
					}
				}
			}
			sort.Ints(targets)
			key := subsetKey(targets)
			id, ok := idOf[key]
			if !ok {
				id = out.AddState()
				idOf[key] = id
				subsets = append(subsets, targets)
				out.SetAccepting(id, anyAccepting(n, targets))
				queue = append(queue, id)
			}
			out.AddTransition(curID, sym, id)
		}
	}
	return out, nil
}

// Determinize composes RemoveEpsilon, SplitTransitions (in place on the
// result of RemoveEpsilon) and DeterminizeSingleLetter.
func (n *NFA) Determinize() (*DFA, error) {
	withoutEpsilon := n.RemoveEpsilon()
	withoutEpsilon.SplitTransitions()
	return withoutEpsilon.DeterminizeSingleLetter()
}

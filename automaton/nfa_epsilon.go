package automaton

import "sort"

// epsilonClosure returns, in ascending order, every state reachable from s
// via zero or more ε-labelled transitions, s itself included.
func epsilonClosure(n *NFA, s int) []int {
	visited := map[int]bool{s: true}
	stack := []int{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.Trans[cur] {
			if e.Label == "" && !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	out := make([]int, 0, len(visited))
	for s := range visited {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// RemoveEpsilon returns a fresh NFA, same state ids as n, with every
// ε-transition folded away: state s is accepting iff any state in
// ε-closure(s) was accepting in n, and for every t in ε-closure(s) and
// every non-ε transition t--c-->t' in n, the result gets s--c-->t'.
// Outgoing transitions are deduplicated per state. No empty-label
// transition survives in the result.
func (n *NFA) RemoveEpsilon() *NFA {
	closures := make([][]int, n.StateCount)
	for s := 0; s < n.StateCount; s++ {
		closures[s] = epsilonClosure(n, s)
	}

	out := NewNFA()
	for i := 0; i < n.StateCount; i++ {
		out.AddState()
	}
	out.SetInitial(n.Initial)

	for s := 0; s < n.StateCount; s++ {
		accepting := false
		for _, t := range closures[s] {
			if n.Accepting[t] {
				accepting = true
				break
			}
		}
		out.SetAccepting(s, accepting)

		for _, t := range closures[s] {
			for _, edge := range n.Trans[t] {
				if edge.Label == "" {
					continue
				}
				out.AddTransition(s, edge.Label, edge.To)
			}
		}
		out.RemoveDuplicateTransitions(s)
	}
	return out
}

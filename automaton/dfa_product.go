package automaton

// product runs the standard product construction over a and b, combining
// each pair's accepting bit with combine. A transition (p,q) --c--> (p',q')
// exists iff both p--c-->p' in a and q--c-->q' in b exist; states are
// created on demand as the pair is first reached, numbered in
// first-encountered order. The pair key is this.state*other.state_count +
// other.state, the natural row-major addressing for a state pair.
func product(a, b *DFA, combine func(x, y bool) bool) *DFA {
	out := NewDFA()
	idOf := make(map[int]int)
	pairID := func(pi, qi int) int { return pi*b.StateCount + qi }

	startPair := pairID(a.Initial, b.Initial)
	startID := out.AddState()
	idOf[startPair] = startID
	out.SetAccepting(startID, combine(a.Accepting[a.Initial], b.Accepting[b.Initial]))
	out.SetInitial(startID)

	type work struct{ p, q int }
	queue := []work{{a.Initial, b.Initial}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := idOf[pairID(cur.p, cur.q)]

		alphabet := unionAlphabet(sortedByteKeys(a.Trans[cur.p]), sortedByteKeys(b.Trans[cur.q]))
		for _, sym := range alphabet {
			pa, oka := a.Trans[cur.p][sym]
			qb, okb := b.Trans[cur.q][sym]
			if !oka || !okb {
				continue
			}
			key := pairID(pa, qb)
			id, seen := idOf[key]
			if !seen {
				id = out.AddState()
				idOf[key] = id
				out.SetAccepting(id, combine(a.Accepting[pa], b.Accepting[qb]))
				queue = append(queue, work{pa, qb})
			}
			out.AddTransition(curID, sym, id)
		}
	}
	return out
}

// Intersection returns the product DFA accepting exactly the strings both
// d and other accept. Inputs need not be complete.
func (d *DFA) Intersection(other *DFA) *DFA {
	return product(d, other, func(x, y bool) bool { return x && y })
}

// Union returns the product DFA accepting exactly the strings either d or
// other accepts. A direct generalization of Intersection's product
// construction with the combining predicate swapped to ||.
func (d *DFA) Union(other *DFA) *DFA {
	return product(d, other, func(x, y bool) bool { return x || y })
}

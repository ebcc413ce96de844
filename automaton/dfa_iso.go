package automaton

// IsIsomorphic reports whether there is a bijection on states mapping d's
// initial to other's initial, preserving accepting bits and every
// transition. It walks both automata in lockstep with a parallel DFS,
// extending a this→other mapping as new states are reached and failing on
// any mismatch: unequal accepting bit, unequal outgoing arity, a symbol
// present on one side but not the other, or a transition that would remap
// an already-mapped state (in either direction) inconsistently.
func (d *DFA) IsIsomorphic(other *DFA) bool {
	if d.StateCount != other.StateCount {
		return false
	}
	if d.StateCount == 0 {
		return true
	}

	mapping := make(map[int]int, d.StateCount)
	mapped := make(map[int]bool, d.StateCount)

	var dfs func(s, o int) bool
	dfs = func(s, o int) bool {
		if existing, ok := mapping[s]; ok {
			return existing == o
		}
		if mapped[o] {
			return false
		}
		if d.Accepting[s] != other.Accepting[o] {
			return false
		}
		if len(d.Trans[s]) != len(other.Trans[o]) {
			return false
		}
		mapping[s] = o
		mapped[o] = true
		for sym, to := range d.Trans[s] {
			otherTo, ok := other.Trans[o][sym]
			if !ok {
				return false
			}
			if !dfs(to, otherTo) {
				return false
			}
		}
		return true
	}
	return dfs(d.Initial, other.Initial)
}

// IsEquivalent reports whether d and other accept the same language: both
// are completed (over no extra alphabet, i.e. just their own effective
// alphabets), minimized, and compared up to isomorphism.
func (d *DFA) IsEquivalent(other *DFA) (bool, error) {
	dc := d.Clone().MakeComplete(nil)
	oc := other.Clone().MakeComplete(nil)

	dm, err := dc.Minimize()
	if err != nil {
		return false, err
	}
	om, err := oc.Minimize()
	if err != nil {
		return false, err
	}
	return dm.IsIsomorphic(om), nil
}

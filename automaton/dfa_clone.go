package automaton

// Clone returns a deep copy of d, independent of any further mutation —
// used by IsEquivalent so that MakeComplete/Minimize never touch the
// caller's original automata.
func (d *DFA) Clone() *DFA {
	out := &DFA{
		StateCount: d.StateCount,
		Initial:    d.Initial,
		Accepting:  append([]bool(nil), d.Accepting...),
		Trans:      make([]map[byte]int, d.StateCount),
	}
	for i, t := range d.Trans {
		m := make(map[byte]int, len(t))
		for k, v := range t {
			m[k] = v
		}
		out.Trans[i] = m
	}
	return out
}

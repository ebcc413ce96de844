package automaton

// ToNFA returns an NFA with the same states, initial state and accepting
// bits as d, and one single-symbol transition per DFA transition — the
// trivial embedding of a deterministic automaton as a nondeterministic
// one, used wherever an NFA-only operation (ToRegex, MakeSingleAccepting)
// needs to run over what was a DFA.
func (d *DFA) ToNFA() *NFA {
	n := NewNFA()
	for i := 0; i < d.StateCount; i++ {
		n.AddState()
	}
	n.SetInitial(d.Initial)
	for i, acc := range d.Accepting {
		n.SetAccepting(i, acc)
	}
	d.Walk(func(from, to int, label byte) {
		n.AddTransition(from, string(label), to)
	})
	return n
}

package automaton

// MakeSingleAccepting mutates n in place: adds a new state, makes it the
// sole accepting state, and adds an ε-transition into it from every state
// that was previously accepting (those states themselves stop being
// accepting — "sole" is a postcondition, not just an addition). Returns n.
func (n *NFA) MakeSingleAccepting() *NFA {
	newAccept := n.AddState()
	for s := 0; s < newAccept; s++ {
		if n.Accepting[s] {
			n.AddTransition(s, "", newAccept)
			n.SetAccepting(s, false)
		}
	}
	n.SetAccepting(newAccept, true)
	return n
}

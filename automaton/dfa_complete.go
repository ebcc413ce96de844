package automaton

// MakeComplete mutates d in place, adding one sink state and wiring every
// state (the new sink included) to have an outgoing transition on every
// symbol of the effective alphabet — the union of alphabet and every
// symbol already used as a transition key somewhere in d. The sink loops
// to itself on every symbol of that effective alphabet. Returns d.
func (d *DFA) MakeComplete(alphabet []byte) *DFA {
	effective := unionAlphabet(alphabet, d.Alphabet())

	sink := d.AddState()
	for _, sym := range effective {
		d.Trans[sink][sym] = sink
	}

	for s := 0; s < sink; s++ {
		for _, sym := range effective {
			if _, ok := d.Trans[s][sym]; !ok {
				d.Trans[s][sym] = sink
			}
		}
	}
	return d
}

func unionAlphabet(a, b []byte) []byte {
	seen := make(map[byte]struct{}, len(a)+len(b))
	for _, c := range a {
		seen[c] = struct{}{}
	}
	for _, c := range b {
		seen[c] = struct{}{}
	}
	out := make([]byte, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sortBytes(out)
	return out
}

package automaton

import (
	"fmt"

	"relab/rerrors"
)

// isCompleteOver reports whether every state has an outgoing transition on
// every symbol of alphabet.
func (d *DFA) isCompleteOver(alphabet []byte) bool {
	for s := 0; s < d.StateCount; s++ {
		for _, sym := range alphabet {
			if _, ok := d.Trans[s][sym]; !ok {
				return false
			}
		}
	}
	return true
}

// Complement mutates d in place, flipping every accepting bit, and returns
// d. d must already be complete (over its own effective alphabet); call
// MakeComplete first if it might not be.
func (d *DFA) Complement() (*DFA, error) {
	if !d.isCompleteOver(d.Alphabet()) {
		return nil, fmt.Errorf("automaton: Complement: %w", rerrors.NotCompleteForComplement)
	}
	for i := range d.Accepting {
		d.Accepting[i] = !d.Accepting[i]
	}
	return d, nil
}

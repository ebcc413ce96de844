package automaton

import (
	"fmt"
	"sort"

	"relab/rerrors"
)

// sortedByteKeys returns m's keys in ascending order, for deterministic
// iteration over a DFA state's transitions.
func sortedByteKeys(m map[byte]int) []byte {
	out := make([]byte, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortBytes(out)
	return out
}

func sortBytes(b []byte) {
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
}

// ValidateDFA checks the SizesDiffer invariant: the accepting vector and
// the transition table must have exactly StateCount entries each.
func ValidateDFA(d *DFA) error {
	if len(d.Accepting) != d.StateCount || len(d.Trans) != d.StateCount {
		return fmt.Errorf("automaton: DFA has %d states, %d accepting entries, %d transition rows: %w",
			d.StateCount, len(d.Accepting), len(d.Trans), rerrors.SizesDiffer)
	}
	return nil
}

// ValidateNFA checks the SizesDiffer invariant for an NFA.
func ValidateNFA(n *NFA) error {
	if len(n.Accepting) != n.StateCount || len(n.Trans) != n.StateCount {
		return fmt.Errorf("automaton: NFA has %d states, %d accepting entries, %d transition rows: %w",
			n.StateCount, len(n.Accepting), len(n.Trans), rerrors.SizesDiffer)
	}
	return nil
}

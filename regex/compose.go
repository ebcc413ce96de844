// Package regex composes the RE-algebra (reast) and automaton-substrate
// (automaton) packages into the handful of operations that tie the whole
// toolkit together: compiling a regex to its minimal complete DFA,
// synthesizing the regex for a DFA's complement, and the language-equality
// test that the RE algebra itself deliberately does not expose (to keep
// reast free of a dependency on automaton).
package regex

import (
	"relab/automaton"
	"relab/reast"
)

// ToMinimalCompleteDFA compiles r into its minimal complete DFA over
// alphabet a: Thompson construction, determinize, complete, minimize.
func ToMinimalCompleteDFA(r *reast.Node, alphabet []byte) (*automaton.DFA, error) {
	nfa := automaton.FromRegex(r)
	dfa, err := nfa.Determinize()
	if err != nil {
		return nil, err
	}
	dfa.MakeComplete(alphabet)
	return dfa.Minimize()
}

// Complement returns the regular expression for the complement of r's
// language relative to alphabet: compile to a minimal complete DFA,
// complement it, convert back to a single-accepting-state NFA, and
// synthesize the regex by state elimination.
func Complement(r *reast.Node, alphabet []byte) (*reast.Node, error) {
	dfa, err := ToMinimalCompleteDFA(r, alphabet)
	if err != nil {
		return nil, err
	}
	if _, err := dfa.Complement(); err != nil {
		return nil, err
	}
	nfa := dfa.ToNFA().MakeSingleAccepting()
	return nfa.ToRegex()
}

// Equal reports language equality of r and s: compile both to minimal
// complete DFAs over alphabet (each extended with its own literal symbols)
// and compare them with IsEquivalent. This is the "Equals" the RE algebra's own spec exposes —
// it lives here, not as a reast.Node method, because computing it requires
// the automaton package, and reast must not import automaton (automaton
// already imports reast, for FromRegex/ToRegex; the reverse edge would be
// a cycle).
func Equal(r, s *reast.Node, alphabet []byte) (bool, error) {
	rd, err := ToMinimalCompleteDFA(r, alphabet)
	if err != nil {
		return false, err
	}
	sd, err := ToMinimalCompleteDFA(s, alphabet)
	if err != nil {
		return false, err
	}
	return rd.IsEquivalent(sd)
}

// MaxMatchingPrefix returns the length of the longest prefix of pattern
// that is itself in r's language (0 when no such prefix exists): Thompson
// construction, ε-removal, transition splitting, then a breadth-first
// frontier search over (state, prefix length) pairs.
func MaxMatchingPrefix(r *reast.Node, pattern string) int {
	n := automaton.FromRegex(r).RemoveEpsilon()
	n.SplitTransitions()
	return n.MaxMatchingPrefix(pattern)
}

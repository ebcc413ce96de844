package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"relab/rerrors"
)

// Minimize returns a fresh DFA obtained by iterated signature-based
// partition refinement (Moore/Hopcroft style). The initial partition
// splits states by accepting / non-accepting; each subsequent round
// recomputes every state's signature as (current-class, [class of
// δ(state,c) for each c in the symbols taken from state 0's transition
// keys]) and refines classes by signature equality, until the partition is
// stable. Class ids in the result are assigned in first-seen order during
// that final, stable pass — this ordering is a contract other code and
// tests depend on, not an implementation accident.
//
// Fails with NotCompleteForMinimize if any state's outgoing symbol set
// does not match state 0's — the algorithm requires a complete DFA with a
// uniform alphabet; callers should MakeComplete first.
func (d *DFA) Minimize() (*DFA, error) {
	if d.StateCount == 0 {
		return d, nil
	}

	symbols := sortedByteKeys(d.Trans[0])
	for s := 1; s < d.StateCount; s++ {
		if len(d.Trans[s]) != len(symbols) {
			return nil, fmt.Errorf("automaton: Minimize: state %d has %d transitions, state 0 has %d: %w",
				s, len(d.Trans[s]), len(symbols), rerrors.NotCompleteForMinimize)
		}
		for _, sym := range symbols {
			if _, ok := d.Trans[s][sym]; !ok {
				return nil, fmt.Errorf("automaton: Minimize: state %d missing transition on %q: %w",
					s, sym, rerrors.NotCompleteForMinimize)
			}
		}
	}

	classOf := make([]int, d.StateCount)
	{
		ids := map[bool]int{}
		next := 0
		for s := 0; s < d.StateCount; s++ {
			acc := d.Accepting[s]
			id, ok := ids[acc]
			if !ok {
				id = next
				next++
				ids[acc] = id
			}
			classOf[s] = id
		}
	}

	for {
		sigToClass := make(map[string]int)
		newClassOf := make([]int, d.StateCount)
		next := 0
		var b strings.Builder
		for s := 0; s < d.StateCount; s++ {
			b.Reset()
			b.WriteString(strconv.Itoa(classOf[s]))
			for _, sym := range symbols {
				b.WriteByte('|')
				b.WriteString(strconv.Itoa(classOf[d.Trans[s][sym]]))
			}
			sig := b.String()
			id, ok := sigToClass[sig]
			if !ok {
				id = next
				next++
				sigToClass[sig] = id
			}
			newClassOf[s] = id
		}
		if intSliceEqual(newClassOf, classOf) {
			classOf = newClassOf
			break
		}
		classOf = newClassOf
	}

	numClasses := 0
	for _, c := range classOf {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	out := NewDFA()
	for i := 0; i < numClasses; i++ {
		out.AddState()
	}
	for s := 0; s < d.StateCount; s++ {
		class := classOf[s]
		out.Accepting[class] = d.Accepting[s]
		for _, sym := range symbols {
			out.Trans[class][sym] = classOf[d.Trans[s][sym]]
		}
	}
	out.Initial = classOf[d.Initial]
	return out, nil
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package automaton

// MaxMatchingPrefix returns the length of the longest prefix of pattern
// that n itself accepts: the longest k such that some path of k
// single-symbol transitions from Initial, spelling out pattern[:k],
// reaches an accepting state (0 when no such prefix exists). n must already have its
// ε-transitions removed and transitions split to single symbols (call
// RemoveEpsilon then SplitTransitions first).
//
// The frontier (state, prefix length) is explored breadth-first, mirroring
// the spelled-out prefix rather than the automaton's own shape: each pair
// is visited at most once, so the search is linear in StateCount *
// len(pattern) regardless of how many paths reach a given state at a given
// depth.
func (n *NFA) MaxMatchingPrefix(pattern string) int {
	seen := make([][]bool, n.StateCount)
	for i := range seen {
		seen[i] = make([]bool, len(pattern)+1)
	}

	type frontierEntry struct{ state, prefixLen int }
	queue := []frontierEntry{{n.Initial, 0}}
	seen[n.Initial][0] = true

	maxPrefix := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if n.Accepting[cur.state] {
			if cur.prefixLen > maxPrefix {
				maxPrefix = cur.prefixLen
			}
		}
		if cur.prefixLen == len(pattern) {
			continue
		}
		want := pattern[cur.prefixLen]
		for _, t := range n.Trans[cur.state] {
			if len(t.Label) == 1 && t.Label[0] == want && !seen[t.To][cur.prefixLen+1] {
				seen[t.To][cur.prefixLen+1] = true
				queue = append(queue, frontierEntry{t.To, cur.prefixLen + 1})
			}
		}
	}
	return maxPrefix
}

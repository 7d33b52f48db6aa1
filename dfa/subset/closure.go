package subset

import (
	"sort"

	"github.com/coregx/retafsm/internal/sparse"
	"github.com/coregx/retafsm/nfa"
)

// closure computes the epsilon-closure of seeds: the smallest set of NFA
// state indices containing seeds that is closed under following epsilon
// transitions. visited is scratch space owned by the caller, sized to
// n.States(), and is cleared on every call.
//
// The result is returned sorted ascending: this makes it a canonical set
// representation suitable for use as a map key once encoded (see cache.go),
// satisfying the stable-equality requirement spec.md places on subset
// construction's working set.
func closure(n *nfa.NFA, seeds []nfa.StateID, visited *sparse.SparseSet) []uint32 {
	visited.Clear()

	stack := make([]nfa.StateID, len(seeds))
	copy(stack, seeds)

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Contains(uint32(s)) {
			continue
		}
		visited.Insert(uint32(s))

		for _, tr := range n.Transitions(s) {
			if tr.Symbol != nfa.Epsilon {
				continue
			}
			if !visited.Contains(uint32(tr.Target)) {
				stack = append(stack, tr.Target)
			}
		}
	}

	out := append([]uint32(nil), visited.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

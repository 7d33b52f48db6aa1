package minimize

import (
	"sort"

	"github.com/coregx/retafsm/dfa"
)

// alphabet returns the sorted, deduplicated set of symbols appearing on any
// transition of d. Table-filling must range over exactly this set: a fixed
// a..z alphabet silently treats any symbol outside that range as always
// "dead" on every state, which can equate states that are in fact
// distinguishable by a symbol the fixed alphabet never tests.
func alphabet(d *dfa.DFA) []dfa.Symbol {
	seen := make(map[dfa.Symbol]bool)
	for s := 0; s < d.States(); s++ {
		for _, tr := range d.Transitions(dfa.StateID(s)) {
			seen[tr.Symbol] = true
		}
	}

	out := make([]dfa.Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Package subset determinizes an NFA into a DFA by subset construction:
// every DFA state is the epsilon-closure of a set of NFA states, and
// transitions are discovered breadth-first from the closure of the NFA's
// start state.
package subset

import (
	"sort"

	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/internal/sparse"
	"github.com/coregx/retafsm/nfa"
)

// Build determinizes n using dfa.DefaultConfig.
func Build(n *nfa.NFA) (*dfa.DFA, error) {
	return BuildWithConfig(n, dfa.DefaultConfig())
}

// item is a discovered-but-not-yet-expanded DFA state: its assigned id and
// the (already closed, canonically sorted) NFA state set it represents.
type item struct {
	id   dfa.StateID
	nfas []uint32
}

// BuildWithConfig determinizes n, capping the number of DFA states at
// config.MaxStates (subset construction can in the worst case produce
// 2^|NFA| states).
func BuildWithConfig(n *nfa.NFA, config dfa.Config) (*dfa.DFA, error) {
	acceptSet := sparse.NewSparseSet(uint32(n.States()))
	for _, a := range n.Accept() {
		acceptSet.Insert(uint32(a))
	}
	accepting := func(set []uint32) bool {
		for _, s := range set {
			if acceptSet.Contains(s) {
				return true
			}
		}
		return false
	}

	visited := sparse.NewSparseSet(uint32(n.States()))
	seen := newCache()

	c0 := closure(n, []nfa.StateID{n.Start()}, visited)
	seen.put(c0, 0)

	states := []dfa.State{{}}
	var accept []dfa.StateID
	if accepting(c0) {
		accept = append(accept, 0)
	}

	frontier := []item{{id: 0, nfas: c0}}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		targets := make(map[nfa.Symbol][]nfa.StateID)
		var symbols []int
		for _, s := range cur.nfas {
			for _, tr := range n.Transitions(nfa.StateID(s)) {
				if tr.Symbol == nfa.Epsilon {
					continue
				}
				if int(tr.Symbol) > config.MaxSymbol {
					return nil, &dfa.Error{Kind: dfa.SymbolLimitExceeded, Message: "NFA transition symbol exceeds MaxSymbol"}
				}
				if _, ok := targets[tr.Symbol]; !ok {
					symbols = append(symbols, int(tr.Symbol))
				}
				targets[tr.Symbol] = append(targets[tr.Symbol], tr.Target)
			}
		}
		sort.Ints(symbols)

		trs := make([]dfa.Transition, 0, len(symbols))
		for _, symInt := range symbols {
			sym := nfa.Symbol(symInt)
			cSet := closure(n, targets[sym], visited)

			to, ok := seen.get(cSet)
			if !ok {
				if len(states) >= config.MaxStates {
					return nil, &dfa.Error{Kind: dfa.StateLimitExceeded, Message: "subset construction exceeded MaxStates"}
				}
				to = uint32(len(states))
				seen.put(cSet, to)
				states = append(states, dfa.State{})
				if accepting(cSet) {
					accept = append(accept, dfa.StateID(to))
				}
				frontier = append(frontier, item{id: dfa.StateID(to), nfas: cSet})
			}
			trs = append(trs, dfa.Transition{Symbol: dfa.Symbol(sym), Target: dfa.StateID(to)})
		}

		states[cur.id] = dfa.NewState(cur.id, trs)
	}

	sort.Slice(accept, func(i, j int) bool { return accept[i] < accept[j] })
	return dfa.New(states, 0, accept), nil
}

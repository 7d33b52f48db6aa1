package dot

import (
	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/nfa"
)

type nfaAutomaton struct{ n *nfa.NFA }

// FromNFA adapts n to the Automaton interface Render expects.
func FromNFA(n *nfa.NFA) Automaton { return nfaAutomaton{n} }

func (a nfaAutomaton) States() int { return a.n.States() }
func (a nfaAutomaton) Start() int  { return int(a.n.Start()) }

func (a nfaAutomaton) IsAccept(state int) bool {
	return a.n.IsAccept(nfa.StateID(state))
}

func (a nfaAutomaton) Transitions(state int) []Edge {
	trs := a.n.Transitions(nfa.StateID(state))
	out := make([]Edge, len(trs))
	for i, tr := range trs {
		out[i] = Edge{Symbol: int32(tr.Symbol), Target: int(tr.Target)}
	}
	return out
}

type dfaAutomaton struct{ d *dfa.DFA }

// FromDFA adapts d to the Automaton interface Render expects.
func FromDFA(d *dfa.DFA) Automaton { return dfaAutomaton{d} }

func (a dfaAutomaton) States() int { return a.d.States() }
func (a dfaAutomaton) Start() int  { return int(a.d.Start()) }

func (a dfaAutomaton) IsAccept(state int) bool {
	return a.d.IsAccept(dfa.StateID(state))
}

func (a dfaAutomaton) Transitions(state int) []Edge {
	trs := a.d.Transitions(dfa.StateID(state))
	out := make([]Edge, len(trs))
	for i, tr := range trs {
		out[i] = Edge{Symbol: int32(tr.Symbol), Target: int(tr.Target)}
	}
	return out
}

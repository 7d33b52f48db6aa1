// Package dfa defines the deterministic finite automaton produced by
// package dfa/subset and consumed by package dfa/minimize, package codec
// and package dot. It owns no construction algorithm of its own: builders
// live in the subset and minimize subpackages so that each stays a pure
// function of its input automaton.
package dfa

import "sort"

// Symbol is an integer-valued transition label. Unlike an NFA, a DFA never
// carries an epsilon transition.
type Symbol int32

// StateID indexes into a DFA's state list.
type StateID uint32

// Transition is an ordered pair (symbol, target state).
type Transition struct {
	Symbol Symbol
	Target StateID
}

// State is a single DFA state. Outgoing transitions are sorted by symbol
// ascending and carry at most one transition per distinct symbol.
type State struct {
	id          StateID
	transitions []Transition
}

// ID returns the state's own index.
func (s *State) ID() StateID { return s.id }

// Transitions returns the state's outgoing transitions, sorted by symbol.
func (s *State) Transitions() []Transition { return s.transitions }

// Next returns the target of the transition on sym, if any.
func (s *State) Next(sym Symbol) (StateID, bool) {
	trs := s.transitions
	i := sort.Search(len(trs), func(i int) bool { return trs[i].Symbol >= sym })
	if i < len(trs) && trs[i].Symbol == sym {
		return trs[i].Target, true
	}
	return 0, false
}

// DFA is a deterministic finite automaton: a sequence of states, a start
// state, and a sorted, duplicate-free list of accept states.
type DFA struct {
	states []State
	start  StateID
	accept []StateID
}

// NewState constructs a State from an id and its already-sorted
// transitions. Builders use this to assemble states one at a time.
func NewState(id StateID, transitions []Transition) State {
	return State{id: id, transitions: transitions}
}

// New assembles a DFA from already-canonical parts: states must already
// carry transitions sorted by symbol, and accept must already be sorted
// and duplicate-free. Builders (subset, minimize) and the codec decoder
// are the only expected callers.
func New(states []State, start StateID, accept []StateID) *DFA {
	return &DFA{states: states, start: start, accept: accept}
}

// States returns the number of states in the automaton.
func (d *DFA) States() int { return len(d.states) }

// Start returns the start state index.
func (d *DFA) Start() StateID { return d.start }

// Accept returns the sorted accept state indices.
func (d *DFA) Accept() []StateID { return d.accept }

// IsAccept reports whether s is an accept state. Accept is sorted, so this
// is a binary search.
func (d *DFA) IsAccept(s StateID) bool {
	i := sort.Search(len(d.accept), func(i int) bool { return d.accept[i] >= s })
	return i < len(d.accept) && d.accept[i] == s
}

// Transitions returns the outgoing transitions of state s, sorted by
// symbol.
func (d *DFA) Transitions(s StateID) []Transition {
	return d.states[s].transitions
}

// State returns a pointer to state s, for callers that want Next directly.
func (d *DFA) State(s StateID) *State {
	return &d.states[s]
}

// Accepts walks the automaton's deterministic transition table over input
// and reports whether the full input ends on an accept state. This is the
// direct execution of the automaton's own definition — a table lookup per
// byte, with no backtracking or partial-match reporting — used to test
// that construction and minimization preserve the accepted language. It is
// not a matching engine.
func (d *DFA) Accepts(input []byte) bool {
	s := d.start
	for _, b := range input {
		next, ok := d.State(s).Next(Symbol(b))
		if !ok {
			return false
		}
		s = next
	}
	return d.IsAccept(s)
}

// Validate checks the structural invariants spec.md requires of a DFA:
// every transition targets a valid state, and no state carries two
// transitions for the same symbol.
func (d *DFA) Validate() error {
	n := StateID(len(d.states))
	if d.start >= n && n > 0 {
		return &Error{Kind: InvalidAutomaton, Message: "start state out of range"}
	}
	for _, a := range d.accept {
		if a >= n {
			return &Error{Kind: InvalidAutomaton, Message: "accept state out of range"}
		}
	}
	for _, s := range d.states {
		for i, tr := range s.transitions {
			if tr.Target >= n {
				return &Error{Kind: InvalidAutomaton, Message: "transition targets out-of-range state"}
			}
			if i > 0 && s.transitions[i-1].Symbol >= tr.Symbol {
				return &Error{Kind: InvalidAutomaton, Message: "transitions not strictly sorted by symbol, or duplicate symbol"}
			}
		}
	}
	return nil
}

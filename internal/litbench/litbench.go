// Package litbench compares two ways of testing whether a haystack
// contains any of a set of literal alternatives: walking a compiled DFA's
// transition table at every starting offset, versus a purpose-built
// Aho-Corasick automaton. It exists to benchmark the tradeoff, not to pick
// a winner for general use — nothing in this module replaces dfa.Accepts
// with Aho-Corasick at runtime.
package litbench

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/retafsm/dfa"
)

// DFAContains reports whether any substring of haystack is accepted by d,
// by re-running dfa.Accepts-style table walks from every starting offset.
// This is the naive baseline litbench measures Aho-Corasick against.
func DFAContains(d *dfa.DFA, haystack []byte) bool {
	for start := 0; start <= len(haystack); start++ {
		if scanFrom(d, haystack[start:]) {
			return true
		}
	}
	return false
}

// scanFrom walks d's transition table over every prefix of input, starting
// at its first byte, and reports whether any prefix lands on an accept
// state.
func scanFrom(d *dfa.DFA, input []byte) bool {
	s := d.Start()
	if d.IsAccept(s) {
		return true
	}
	for _, b := range input {
		next, ok := d.State(s).Next(dfa.Symbol(b))
		if !ok {
			return false
		}
		s = next
		if d.IsAccept(s) {
			return true
		}
	}
	return false
}

// BuildAhoCorasick compiles literals into an Aho-Corasick automaton.
func BuildAhoCorasick(literals [][]byte) (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	return builder.Build()
}

// AhoCorasickContains reports whether any of automaton's patterns occur in
// haystack.
func AhoCorasickContains(automaton *ahocorasick.Automaton, haystack []byte) bool {
	return automaton.IsMatch(haystack)
}

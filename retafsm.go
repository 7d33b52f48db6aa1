// Package retafsm builds minimal deterministic finite automata from regular
// expressions.
//
// The pipeline is four pure stages, each consuming the previous stage's
// output:
//
//	postfix.Convert  — infix regex syntax -> postfix token string
//	nfa.Build        — postfix tokens -> Thompson NFA
//	subset.Build     — NFA -> DFA by subset construction
//	minimize.Minimize — DFA -> minimal DFA by table-filling
//
// Compile runs all four stages and returns the minimal DFA. Callers that
// need an intermediate result (the NFA, for DOT rendering, or the
// unminimized DFA) should call the stages directly instead.
//
// Basic usage:
//
//	d, err := retafsm.Compile(`(a|b)*abb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if d.Accepts([]byte("aababb")) {
//	    fmt.Println("matched!")
//	}
package retafsm

import (
	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/dfa/minimize"
	"github.com/coregx/retafsm/dfa/subset"
	"github.com/coregx/retafsm/nfa"
	"github.com/coregx/retafsm/postfix"
)

// Compile runs the full pipeline on pattern using dfa.DefaultConfig and
// returns the minimal DFA.
func Compile(pattern string) (*dfa.DFA, error) {
	return CompileWithConfig(pattern, dfa.DefaultConfig())
}

// CompileWithConfig runs the full pipeline with a caller-supplied resource
// Config, bounding the number of states subset construction may allocate.
func CompileWithConfig(pattern string, config dfa.Config) (*dfa.DFA, error) {
	pf, err := postfix.Convert(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.Build(pf)
	if err != nil {
		return nil, err
	}
	d, err := subset.BuildWithConfig(n, config)
	if err != nil {
		return nil, err
	}
	return minimize.Minimize(d), nil
}

// Postfix is a convenience wrapper around postfix.Convert, exposed at the
// package root so callers that only need the intermediate token string
// don't need to import the postfix package directly.
func Postfix(pattern string) (string, error) {
	return postfix.Convert(pattern)
}

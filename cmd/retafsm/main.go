// Command retafsm compiles a regular expression and prints its postfix
// form and the DOT rendering of its NFA, DFA, and minimal DFA.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/retafsm/dfa/minimize"
	"github.com/coregx/retafsm/dfa/subset"
	"github.com/coregx/retafsm/dot"
	"github.com/coregx/retafsm/nfa"
	"github.com/coregx/retafsm/postfix"
)

func main() {
	flag.Parse()
	pattern := flag.Arg(0)
	if pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: retafsm REGEX")
		os.Exit(1)
	}

	if err := run(pattern); err != nil {
		fmt.Fprintln(os.Stderr, "retafsm:", err)
		os.Exit(1)
	}
}

func run(pattern string) error {
	pf, err := postfix.Convert(pattern)
	if err != nil {
		return err
	}
	fmt.Println(pf)

	n, err := nfa.Build(pf)
	if err != nil {
		return err
	}
	if err := dot.Render(os.Stdout, dot.FromNFA(n), "nfa"); err != nil {
		return err
	}

	d, err := subset.Build(n)
	if err != nil {
		return err
	}
	if err := dot.Render(os.Stdout, dot.FromDFA(d), "dfa"); err != nil {
		return err
	}

	m := minimize.Minimize(d)
	return dot.Render(os.Stdout, dot.FromDFA(m), "min_dfa")
}

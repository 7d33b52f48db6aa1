// Package codec implements the whitespace-separated text format shared by
// NFA and DFA serialization: start state, state/transition counts,
// transitions, then the accept list.
package codec

import (
	"fmt"
	"io"
	"sort"

	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/nfa"
)

// record is the format-neutral shape both NFA and DFA reduce to for
// encoding. Decoding parses into rawRecord instead (see decode.go).
type record struct {
	start       uint32
	numStates   int
	transitions []rawTransition
	accept      []uint32
}

type rawTransition struct {
	from, to uint32
	symbol   int32
}

// EncodeDFA writes d to w in the shared text format. Transitions are
// emitted sorted by (from, symbol, to); the accept list is emitted in its
// stored (already sorted) order.
func EncodeDFA(w io.Writer, d *dfa.DFA) error {
	var trs []rawTransition
	for s := 0; s < d.States(); s++ {
		for _, tr := range d.Transitions(dfa.StateID(s)) {
			trs = append(trs, rawTransition{from: uint32(s), symbol: int32(tr.Symbol), to: uint32(tr.Target)})
		}
	}
	sort.Slice(trs, func(i, j int) bool {
		if trs[i].from != trs[j].from {
			return trs[i].from < trs[j].from
		}
		if trs[i].symbol != trs[j].symbol {
			return trs[i].symbol < trs[j].symbol
		}
		return trs[i].to < trs[j].to
	})

	accept := make([]uint32, len(d.Accept()))
	for i, a := range d.Accept() {
		accept[i] = uint32(a)
	}

	return write(w, record{start: uint32(d.Start()), numStates: d.States(), transitions: trs, accept: accept})
}

// EncodeNFA writes n to w in the shared text format. Transitions are
// emitted sorted by (from, symbol, to) for a deterministic byte stream;
// epsilon transitions (symbol -1) round-trip like any other. The accept
// list is emitted in its stored order, unsorted and not deduplicated — an
// NFA carries no invariant requiring either.
func EncodeNFA(w io.Writer, n *nfa.NFA) error {
	var trs []rawTransition
	for s := 0; s < n.States(); s++ {
		for _, tr := range n.Transitions(nfa.StateID(s)) {
			trs = append(trs, rawTransition{from: uint32(s), symbol: int32(tr.Symbol), to: uint32(tr.Target)})
		}
	}
	sort.Slice(trs, func(i, j int) bool {
		if trs[i].from != trs[j].from {
			return trs[i].from < trs[j].from
		}
		if trs[i].symbol != trs[j].symbol {
			return trs[i].symbol < trs[j].symbol
		}
		return trs[i].to < trs[j].to
	})

	accept := make([]uint32, len(n.Accept()))
	for i, a := range n.Accept() {
		accept[i] = uint32(a)
	}

	return write(w, record{start: uint32(n.Start()), numStates: n.States(), transitions: trs, accept: accept})
}

func write(w io.Writer, r record) error {
	if _, err := fmt.Fprintf(w, "%d %d %d\n", r.start, r.numStates, len(r.transitions)); err != nil {
		return &Error{Kind: IoError, Message: "writing header", Cause: err}
	}
	for _, tr := range r.transitions {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", tr.from, tr.symbol, tr.to); err != nil {
			return &Error{Kind: IoError, Message: "writing transition", Cause: err}
		}
	}
	if _, err := fmt.Fprintf(w, "%d", len(r.accept)); err != nil {
		return &Error{Kind: IoError, Message: "writing accept count", Cause: err}
	}
	for _, a := range r.accept {
		if _, err := fmt.Fprintf(w, " %d", a); err != nil {
			return &Error{Kind: IoError, Message: "writing accept state", Cause: err}
		}
	}
	_, err := fmt.Fprintln(w)
	if err != nil {
		return &Error{Kind: IoError, Message: "writing trailing newline", Cause: err}
	}
	return nil
}

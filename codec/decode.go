package codec

import (
	"bufio"
	"io"
	"sort"

	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/nfa"
)

// tokenizer scans the shared text format's whitespace-separated integers,
// tagging malformed or truncated input with a codec.Error rather than
// letting a bare strconv/fmt error escape.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", &Error{Kind: IoError, Message: "reading token", Cause: err}
		}
		return "", &Error{Kind: InvalidAutomaton, Message: "unexpected end of input"}
	}
	return t.sc.Text(), nil
}

func (t *tokenizer) nextInt() (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	var v int64
	var neg bool
	i := 0
	if len(tok) > 0 && tok[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(tok) {
		return 0, &Error{Kind: InvalidAutomaton, Message: "malformed integer: " + tok}
	}
	for ; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, &Error{Kind: InvalidAutomaton, Message: "malformed integer: " + tok}
		}
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

// rawRecord is the parsed-but-not-yet-domain-typed shape of the shared text
// format: header counts, transitions bucketed by their from-state, and the
// accept list exactly as read (neither sorted nor deduplicated).
type rawRecord struct {
	start      int64
	numStates  int64
	trsByState [][]rawTransition
	accept     []int64
}

// parseRecord reads the shared text format from r, validating that every
// transition and accept index references a state within [0, numStates).
// It does not impose DFA-only invariants (sorted/unique transitions per
// state, sorted/unique accept list); callers that need those validate them
// on top of the raw result.
func parseRecord(r io.Reader) (*rawRecord, error) {
	t := newTokenizer(r)

	start, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	numStates, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	numTransitions, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	if numStates < 0 || numTransitions < 0 {
		return nil, &Error{Kind: InvalidAutomaton, Message: "negative count in header"}
	}

	trsByState := make([][]rawTransition, numStates)
	for i := int64(0); i < numTransitions; i++ {
		from, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		sym, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		to, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		if from < 0 || from >= numStates || to < 0 || to >= numStates {
			return nil, &Error{Kind: InvalidAutomaton, Message: "transition references out-of-range state"}
		}
		trsByState[from] = append(trsByState[from], rawTransition{from: uint32(from), symbol: int32(sym), to: uint32(to)})
	}

	if start < 0 || (numStates > 0 && start >= numStates) {
		return nil, &Error{Kind: InvalidAutomaton, Message: "start state out of range"}
	}

	numAccept, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	if numAccept < 0 {
		return nil, &Error{Kind: InvalidAutomaton, Message: "negative accept count"}
	}
	accept := make([]int64, numAccept)
	for i := int64(0); i < numAccept; i++ {
		a, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		if a < 0 || a >= numStates {
			return nil, &Error{Kind: InvalidAutomaton, Message: "accept state out of range"}
		}
		accept[i] = a
	}

	return &rawRecord{start: start, numStates: numStates, trsByState: trsByState, accept: accept}, nil
}

// DecodeDFA reads a DFA from r in the shared text format, validating that
// every transition and accept index is in range and that no state carries
// two transitions on the same symbol. The accept list is sorted as read;
// a duplicate accept entry is rejected.
func DecodeDFA(r io.Reader) (*dfa.DFA, error) {
	rec, err := parseRecord(r)
	if err != nil {
		return nil, err
	}

	states := make([]dfa.State, rec.numStates)
	for i := int64(0); i < rec.numStates; i++ {
		raw := rec.trsByState[i]
		trs := make([]dfa.Transition, len(raw))
		for k, tr := range raw {
			trs[k] = dfa.Transition{Symbol: dfa.Symbol(tr.symbol), Target: dfa.StateID(tr.to)}
		}
		sort.Slice(trs, func(a, b int) bool { return trs[a].Symbol < trs[b].Symbol })
		for k := 1; k < len(trs); k++ {
			if trs[k-1].Symbol == trs[k].Symbol {
				return nil, &Error{Kind: InvalidAutomaton, Message: "duplicate-symbol transition in decoded state"}
			}
		}
		states[i] = dfa.NewState(dfa.StateID(i), trs)
	}

	accept := make([]dfa.StateID, len(rec.accept))
	for i, a := range rec.accept {
		accept[i] = dfa.StateID(a)
	}
	sort.Slice(accept, func(i, j int) bool { return accept[i] < accept[j] })
	for k := 1; k < len(accept); k++ {
		if accept[k-1] == accept[k] {
			return nil, &Error{Kind: InvalidAutomaton, Message: "duplicate accept state in decoded accept list"}
		}
	}

	d := dfa.New(states, dfa.StateID(rec.start), accept)
	if err := d.Validate(); err != nil {
		return nil, &Error{Kind: InvalidAutomaton, Message: "decoded automaton failed validation", Cause: err}
	}
	return d, nil
}

// DecodeNFA reads an NFA from r in the shared text format. Unlike
// DecodeDFA, it neither sorts nor deduplicates each state's transitions
// (an NFA may carry several transitions on the same symbol, and epsilon
// transitions, symbol -1, are valid literal input) nor the accept list (an
// NFA decoded this way may legitimately have more than one accept state,
// in no particular order).
func DecodeNFA(r io.Reader) (*nfa.NFA, error) {
	rec, err := parseRecord(r)
	if err != nil {
		return nil, err
	}

	states := make([]nfa.State, rec.numStates)
	for i := int64(0); i < rec.numStates; i++ {
		raw := rec.trsByState[i]
		trs := make([]nfa.Transition, len(raw))
		for k, tr := range raw {
			trs[k] = nfa.Transition{Symbol: nfa.Symbol(tr.symbol), Target: nfa.StateID(tr.to)}
		}
		states[i] = nfa.NewState(nfa.StateID(i), trs)
	}

	accept := make([]nfa.StateID, len(rec.accept))
	for i, a := range rec.accept {
		accept[i] = nfa.StateID(a)
	}

	return nfa.New(states, nfa.StateID(rec.start), accept), nil
}

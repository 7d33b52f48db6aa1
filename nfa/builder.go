package nfa

import (
	"github.com/coregx/retafsm/internal/conv"
)

// frag is a sub-automaton fragment: the pair of endpoints pushed and
// popped by Thompson's construction. enter is the fragment's entry state,
// exit its exit state.
type frag struct {
	enter, exit StateID
}

// builder accumulates states for a single Build call. It is append-only:
// once a state is added its index never changes, so fragments already on
// the stack stay valid as more states are allocated.
type builder struct {
	states []State
}

// addState allocates a fresh state with no transitions and returns its id.
func (b *builder) addState() StateID {
	id := conv.IntToUint32(len(b.states))
	b.states = append(b.states, State{id: StateID(id)})
	return StateID(id)
}

// addEpsilon records an epsilon transition from `from` to `to`.
func (b *builder) addEpsilon(from, to StateID) {
	b.addTransition(from, Epsilon, to)
}

// addTransition records a transition from `from` to `to` labeled sym.
func (b *builder) addTransition(from StateID, sym Symbol, to StateID) {
	b.states[from].transitions = append(b.states[from].transitions, Transition{Symbol: sym, Target: to})
}

// Build runs Thompson's construction over a postfix token string (the
// output of postfix.Convert) and returns the resulting NFA.
//
// Recognized tokens: literal bytes (0..127), and the five operators
// `.` (concatenation), `|` (alternation), `*` (Kleene star), `+`
// (one-or-more), `?` (zero-or-one). An empty token string yields a
// one-state automaton that is both its own start and accept state (the
// empty-string automaton); spec.md leaves this case optional, and this
// implementation chooses to support it since no special-casing is needed
// downstream.
func Build(postfixTokens string) (*NFA, error) {
	b := &builder{}

	if len(postfixTokens) == 0 {
		id := b.addState()
		return &NFA{states: b.states, start: id, accept: []StateID{id}}, nil
	}

	var stack []frag

	pop := func(pos int) (frag, error) {
		if len(stack) == 0 {
			return frag{}, &Error{Kind: StackUnderflow, Message: "operator has no operand on the stack", Pos: pos}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for pos := 0; pos < len(postfixTokens); pos++ {
		tok := postfixTokens[pos]

		switch tok {
		case '.':
			f2, err := pop(pos)
			if err != nil {
				return nil, err
			}
			f1, err := pop(pos)
			if err != nil {
				return nil, err
			}
			b.addEpsilon(f1.exit, f2.enter)
			stack = append(stack, frag{f1.enter, f2.exit})

		case '|':
			f2, err := pop(pos)
			if err != nil {
				return nil, err
			}
			f1, err := pop(pos)
			if err != nil {
				return nil, err
			}
			n := b.addState()
			m := b.addState()
			b.addEpsilon(n, f1.enter)
			b.addEpsilon(n, f2.enter)
			b.addEpsilon(f1.exit, m)
			b.addEpsilon(f2.exit, m)
			stack = append(stack, frag{n, m})

		case '*':
			f, err := pop(pos)
			if err != nil {
				return nil, err
			}
			n := b.addState()
			m := b.addState()
			b.addEpsilon(n, f.enter)
			b.addEpsilon(n, m)
			b.addEpsilon(f.exit, f.enter)
			b.addEpsilon(f.exit, m)
			stack = append(stack, frag{n, m})

		case '+':
			f, err := pop(pos)
			if err != nil {
				return nil, err
			}
			n := b.addState()
			m := b.addState()
			b.addEpsilon(n, f.enter)
			b.addEpsilon(f.exit, f.enter)
			b.addEpsilon(f.exit, m)
			stack = append(stack, frag{n, m})

		case '?':
			f, err := pop(pos)
			if err != nil {
				return nil, err
			}
			n := b.addState()
			m := b.addState()
			b.addEpsilon(n, f.enter)
			b.addEpsilon(n, m)
			b.addEpsilon(f.exit, m)
			stack = append(stack, frag{n, m})

		default:
			if tok > 127 {
				return nil, &Error{Kind: UnknownToken, Message: "token is not a literal or a recognized operator", Pos: pos}
			}
			n := b.addState()
			m := b.addState()
			b.addTransition(n, Symbol(tok), m)
			stack = append(stack, frag{n, m})
		}
	}

	if len(stack) != 1 {
		return nil, &Error{Kind: UnbalancedPostfix, Message: "postfix string did not reduce to a single fragment", Pos: len(postfixTokens)}
	}

	f := stack[0]
	return &NFA{states: b.states, start: f.enter, accept: []StateID{f.exit}}, nil
}

// Package postfix converts an infix regular expression — parentheses,
// alternation `|`, the quantifiers `*` `+` `?`, and implicit juxtaposition
// for concatenation — into a postfix token string with juxtaposition made
// explicit as `.`. The output is exactly the input grammar for package
// nfa's Thompson builder.
//
// Convert is a single left-to-right scan over two counters, `exp` (pending
// operands in the innermost parenthetical scope) and `alt` (pending `|`
// operators in that scope), plus a stack of saved (alt, exp) pairs pushed
// on `(` and popped on `)`.
package postfix

import "strings"

const operators = "()|*+?"

// Convert converts an infix regex into postfix form. An empty input
// yields empty output.
func Convert(regex string) (string, error) {
	if len(regex) == 0 {
		return "", nil
	}

	var s strings.Builder
	s.Grow(2 * len(regex))

	type scope struct {
		alt, exp int
	}

	var nests []scope
	alt, exp := 0, 0

	for pos := 0; pos < len(regex); pos++ {
		c := regex[pos]

		switch c {
		case '(':
			if exp > 1 {
				exp--
				s.WriteByte('.')
			}
			nests = append(nests, scope{alt, exp})
			alt, exp = 0, 0

		case '|':
			if exp < 1 {
				return "", &Error{Kind: EmptyGroup, Message: "`|` with no preceding operand", Pos: pos}
			}
			for exp > 1 {
				exp--
				s.WriteByte('.')
			}
			exp = 0
			alt++

		case ')':
			if len(nests) == 0 {
				return "", &Error{Kind: UnmatchedClose, Message: "`)` with no matching `(`", Pos: pos}
			}
			if exp < 1 {
				return "", &Error{Kind: EmptyGroup, Message: "empty or unterminated group before `)`", Pos: pos}
			}
			for exp > 1 {
				exp--
				s.WriteByte('.')
			}
			for ; alt > 0; alt-- {
				s.WriteByte('|')
			}
			top := nests[len(nests)-1]
			nests = nests[:len(nests)-1]
			alt, exp = top.alt, top.exp
			exp++

		case '*', '+', '?':
			if exp < 1 {
				return "", &Error{Kind: EmptyGroup, Message: "quantifier with no preceding operand", Pos: pos}
			}
			s.WriteByte(c)

		default:
			if exp > 1 {
				exp--
				s.WriteByte('.')
			}
			s.WriteByte(c)
			exp++
		}
	}

	if len(nests) != 0 {
		return "", &Error{Kind: UnmatchedOpen, Message: "`(` with no matching `)`", Pos: len(regex)}
	}

	for exp > 1 {
		exp--
		s.WriteByte('.')
	}
	for ; alt > 0; alt-- {
		s.WriteByte('|')
	}

	return s.String(), nil
}

// IsOperator reports whether b is one of the surface-syntax operators
// `( ) | * + ?`.
func IsOperator(b byte) bool {
	return strings.IndexByte(operators, b) >= 0
}

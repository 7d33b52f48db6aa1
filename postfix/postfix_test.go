package postfix

import (
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"literal", "a", "a"},
		{"star", "a*", "a*"},
		{"plus", "a+", "a+"},
		{"optional", "a?", "a?"},
		{"concat", "ab", "ab."},
		{"alternation", "a|b", "ab|"},
		{"group star", "(a|b)*", "ab|*"},
		{"nested group", "(ab|a)", "ab.a|"},
		{"three way concat", "abc", "ab.c."},
		{"mixed precedence", "ab*", "ab*."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for _, b := range []byte{'(', ')'} {
				for i := 0; i < len(got); i++ {
					if got[i] == b {
						t.Errorf("Convert(%q) output %q still contains %q", tt.in, got, string(b))
					}
				}
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind ErrorKind
	}{
		{"unmatched open", "(a", UnmatchedOpen},
		{"unmatched close", "a)", UnmatchedClose},
		{"empty group", "()", EmptyGroup},
		{"star without operand", "*", EmptyGroup},
		{"leading alternation", "|a", EmptyGroup},
		{"empty alternative", "(a|)", EmptyGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.in)
			if err == nil {
				t.Fatalf("Convert(%q) succeeded, want error", tt.in)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("Convert(%q) error is not *Error: %v", tt.in, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Convert(%q) kind = %v, want %v", tt.in, pe.Kind, tt.kind)
			}
		})
	}
}

func TestIsOperator(t *testing.T) {
	for _, b := range []byte("()|*+?") {
		if !IsOperator(b) {
			t.Errorf("IsOperator(%q) = false, want true", b)
		}
	}
	for _, b := range []byte("ab09.") {
		if IsOperator(b) {
			t.Errorf("IsOperator(%q) = true, want false", b)
		}
	}
}

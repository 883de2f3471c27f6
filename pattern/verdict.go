package pattern

import (
	"fmt"

	"github.com/tevelee/Eval-sub000/value"
)

// VerdictKind tells how an element or a pattern matched.
type VerdictKind uint8

const (
	NoMatch       VerdictKind = iota // input does not match
	PossibleMatch                    // input ended before a decision could be made
	ExactMatch                       // input matches
	AnyMatch                         // a variable, accepting any input
)

func (k VerdictKind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case PossibleMatch:
		return "possible-match"
	case ExactMatch:
		return "exact-match"
	case AnyMatch:
		return "any-match"
	}
	return "<invalid verdict>"
}

// Verdict is the result of matching an element or a pattern.
/*
type Verdict
	= NoMatch
	| PossibleMatch
	| ExactMatch Int T Vars
	| AnyMatch Bool
*/
type Verdict[T any] struct {
	Kind   VerdictKind
	Length int  // bytes of input consumed, for ExactMatch
	Output T    // output produced, for ExactMatch
	Vars   Vars // variables captured, for ExactMatch
	Greedy bool // for AnyMatch
}

// No is the NoMatch verdict.
func No[T any]() Verdict[T] {
	return Verdict[T]{Kind: NoMatch}
}

// Possible is the PossibleMatch verdict.
func Possible[T any]() Verdict[T] {
	return Verdict[T]{Kind: PossibleMatch}
}

// Exact creates an ExactMatch verdict.
func Exact[T any](length int, output T, vars Vars) Verdict[T] {
	return Verdict[T]{Kind: ExactMatch, Length: length, Output: output, Vars: vars}
}

// Any creates an AnyMatch verdict.
func Any[T any](greedy bool) Verdict[T] {
	return Verdict[T]{Kind: AnyMatch, Greedy: greedy}
}

func (v Verdict[T]) IsMatch() bool {
	return v.Kind == ExactMatch
}

func (v Verdict[T]) IsPossible() bool {
	return v.Kind == PossibleMatch
}

func (v Verdict[T]) IsNoMatch() bool {
	return v.Kind == NoMatch
}

func (v Verdict[T]) String() string {
	switch v.Kind {
	case ExactMatch:
		return fmt.Sprintf("exact-match(%d, %v)", v.Length, v.Output)
	case AnyMatch:
		return fmt.Sprintf("any-match(greedy=%v)", v.Greedy)
	}
	return v.Kind.String()
}

// --- Captured variables ----------------------------------------------------

// Vars holds the values of the variables captured by a match.
type Vars map[string]value.Value

// Get returns the value captured for name; Nil if there is none.
func (vs Vars) Get(name string) value.Value {
	return vs[name]
}

// Number returns the value captured for name if it is a number.
func (vs Vars) Number(name string) (float64, bool) {
	return vs[name].AsNumber()
}

// String returns the value captured for name if it is a string.
func (vs Vars) String(name string) (string, bool) {
	return vs[name].AsString()
}

// Bool returns the value captured for name if it is a boolean.
func (vs Vars) Bool(name string) (bool, bool) {
	return vs[name].AsBool()
}

// Text returns the raw text of a non-interpreted capture; an empty string
// if name did not capture a string.
func (vs Vars) Text(name string) string {
	s, _ := vs[name].AsString()
	return s
}

func (vs Vars) clone() Vars {
	c := make(Vars, len(vs))
	for k, v := range vs {
		c[k] = v
	}
	return c
}

package pattern

import (
	"fmt"
	"unicode/utf8"

	"github.com/tevelee/Eval-sub000/scope"
)

// Dispatch matches a set of patterns at position start of input.
//
// Matching begins with a probe of one character, input[start:start+1].
// Patterns reporting NoMatch for a probe are discarded. If a pattern
// reports ExactMatch, the first such pattern in the order of patterns wins.
// Otherwise, if a pattern reports PossibleMatch, the probe grows by one
// character and the remaining patterns are tried again. If the probe
// cannot grow any further, the result is NoMatch.
func Dispatch[T any](patterns []*Pattern[T], input string, start int, env Env) Verdict[T] {
	if start >= len(input) || len(patterns) == 0 {
		return No[T]()
	}
	rest := input[start:]
	live := patterns
	_, n := utf8.DecodeRuneInString(rest)
	for {
		probe := rest[:n]
		var undecided []*Pattern[T]
		for _, p := range live {
			v := p.Match(probe, env)
			switch v.Kind {
			case ExactMatch:
				record(env.Ctx, p, probe, v)
				return v
			case PossibleMatch:
				undecided = append(undecided, p)
			}
		}
		if len(undecided) == 0 || n == len(rest) {
			return No[T]()
		}
		live = undecided
		_, size := utf8.DecodeRuneInString(rest[n:])
		n += size
	}
}

// MatchWhole matches a set of patterns against the complete input. The
// first pattern in the order of patterns which matches exactly and consumes
// all of input wins.
func MatchWhole[T any](patterns []*Pattern[T], input string, env Env) Verdict[T] {
	for _, p := range patterns {
		v := p.Match(input, env)
		if v.Kind == ExactMatch && v.Length == len(input) {
			record(env.Ctx, p, input, v)
			return v
		}
	}
	return No[T]()
}

// record adds a successful match to the debug trace of ctx.
func record[T any](ctx *scope.Context, p *Pattern[T], input string, v Verdict[T]) {
	if ctx == nil {
		return
	}
	matched := input[:v.Length]
	if p.direction == Reverse {
		matched = input[len(input)-v.Length:]
	}
	ctx.Record(matched, scope.Trace{
		Pattern: p.name,
		Vars:    v.Vars,
		Output:  fmt.Sprint(v.Output),
	})
}

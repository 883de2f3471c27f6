/*
Package pattern implements the matching engine: literal keywords, typed
capture variables, and patterns composed of them.

A Pattern is an ordered sequence of elements plus a reducer producing an
output from the captured variables. Matching a pattern against input does
not construct a grammar or an AST. Instead, a cursor walks the elements
and the input in lock-step, character by character:

    Pattern{ Kw("{{"), Var("expr"), Kw("}}") }

    input   "{{ a + b }} tail"
             ^^ keyword matches
               ^^^^^^^ variable absorbs input the next keyword does not accept
                      ^^ keyword matches, capture "a + b" is finalized

Each element reports a Verdict: NoMatch, PossibleMatch (the input ended
within a keyword, more input is needed to decide), ExactMatch, or AnyMatch
(a variable, willing to consume anything). At most one variable is
capturing at any time, so two variables must always be separated by a
keyword. Use (*Pattern).Check to verify this for a grammar.

Variables capture the shortest text consistent with the following elements,
unless marked Greedy. A variable in the last position of a pattern captures
the rest of the input, unless explicitly marked Shortest.

Nested delimiters ("embedding") are handled for patterns containing an
opening and a closing keyword: while a variable absorbs input, occurrences
of the opening and closing text are counted, and keywords are not accepted
while the nesting depth is positive. This lets

    Pattern{ Open("("), Var("body"), Close(")") }

match "(a(b)c)" as a whole, capturing "a(b)c".

Backward patterns match from the end of the input towards its start, which
is how left-associative operators are expressed.

Dispatch matches a set of patterns at a position of an input, growing the
probe one character at a time until a pattern matches exactly or every
pattern has failed. MatchWhole matches a set of patterns against a complete
input.

Recursion depth is proportional to the nesting depth of the input (captured
text is interpreted recursively). Pathologically deep nesting will exhaust
the stack; there is no built-in limit.

Patterns, keywords and variables are immutable after construction and may
be shared between concurrent evaluations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eval.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("eval.pattern")
}

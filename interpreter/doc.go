/*
Package interpreter implements the two evaluators driving the matching
engine of package pattern.

An Expression evaluator resolves a string to a value. It tries, in this
order:

  - the literal parsers of its data types, most recently registered data
    type first,
  - a variable of the context whose name equals the expression,
  - the patterns of its functions, most recently registered function first.

If nothing matches, the expression has no value (which is not an error).
Registration order is thus the precedence mechanism of a grammar: a data
type or function registered later shadows earlier ones recognizing the
same input. For operators this means that the loosest binding operator is
registered last.

A Template evaluator scans a text from left to right. At each position it
dispatches its statement patterns; the output of a matching statement
replaces the matched region, any other character is copied through
verbatim. Statements usually interpret parts of their match as expressions
(through the template's expression evaluator) or recursively as templates.

Evaluators are immutable after construction and may be shared. Contexts
are not synchronized; concurrent evaluations must not share a context.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package interpreter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eval.interpreter'.
func tracer() tracing.Trace {
	return tracing.Select("eval.interpreter")
}

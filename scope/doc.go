/*
Package scope implements the evaluation context threaded through pattern
matching and evaluation.

A Context is a mutable store of named values. It is created per
evaluation root, possibly merged with a longer-living context of an
evaluator, and handed by reference to every pattern and statement taking
part in an evaluation. Mutations (e.g., by a "set" statement of a template
grammar) are therefore visible to every holder of the same context.

Scoped shadowing is supported by Push and Pop, which save and restore the
complete set of variables. Loop constructs push a scope per iteration.

A Context additionally records a debug trace of every successful pattern
match (matched input → pattern name, captured variables, output). The
trace is for diagnostics only.

Contexts are not safe for concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eval.scope'.
func tracer() tracing.Trace {
	return tracing.Select("eval.scope")
}

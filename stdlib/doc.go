/*
Package stdlib is a standard grammar for the evaluators of package
interpreter.

It provides data types (numbers, booleans, strings, arrays, dates, and
typesetting dimensions and percentages), operators and functions over them,
and a set of template statements in the style of Jinja:

    {{ expr }}                      print the value of an expression
    {# comment #}                   dropped
    {% set name = expr %}           bind a variable in the context
    {% if c %}…{% else %}…{% endif %}
    {% if c %}…{% endif %}
    {% for x in xs %}…{% endfor %}  bind x and index per iteration
    {% raw %}…{% endraw %}          copied verbatim

Operator precedence follows the order of registration: operators binding
loosest are registered last, and are therefore tried first by the
expression evaluator. Binary operators are left-associative; they are
backward patterns whose right operand must not contain a top-level
operator of the same precedence level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package stdlib

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eval.stdlib'.
func tracer() tracing.Trace {
	return tracing.Select("eval.stdlib")
}

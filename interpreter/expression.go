package interpreter

import (
	"strings"

	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

// Expression is an evaluator for typed expressions.
type Expression struct {
	dataTypes []*DataType
	functions []*Function
	ctx       *scope.Context
	// patterns of all functions, most recently registered function first
	candidates []*pattern.Pattern[value.Value]
}

var _ pattern.Evaluator = (*Expression)(nil)

// NewExpression creates an expression evaluator. Data types and functions
// are given in registration order; later entries take precedence. ctx holds
// variables available to every evaluation and may be nil.
func NewExpression(dataTypes []*DataType, functions []*Function, ctx *scope.Context) *Expression {
	if ctx == nil {
		ctx = scope.New(nil)
	}
	e := &Expression{
		dataTypes: append([]*DataType(nil), dataTypes...),
		functions: append([]*Function(nil), functions...),
		ctx:       ctx,
	}
	for i := len(functions) - 1; i >= 0; i-- {
		e.candidates = append(e.candidates, functions[i].patterns...)
	}
	return e
}

// Context returns the context the evaluator was created with.
func (e *Expression) Context() *scope.Context {
	return e.ctx
}

// Evaluate evaluates expr within the evaluator's own context.
func (e *Expression) Evaluate(expr string) maybe.Maybe[value.Value] {
	return e.eval(expr, e.ctx)
}

// EvaluateWith evaluates expr within ctx. Variables of the evaluator's own
// context not bound in ctx are copied into ctx first.
func (e *Expression) EvaluateWith(expr string, ctx *scope.Context) maybe.Maybe[value.Value] {
	if ctx == nil {
		return e.Evaluate(expr)
	}
	ctx.Inherit(e.ctx)
	return e.eval(expr, ctx)
}

// Interpret implements pattern.Evaluator. Expressions have no template
// syntax, captures to be interpreted as a template are returned as
// strings.
func (e *Expression) Interpret(text string, target pattern.Target, ctx *scope.Context) maybe.Maybe[value.Value] {
	if target == pattern.AsTemplate {
		return maybe.Just(value.String(text))
	}
	return e.eval(text, ctx)
}

func (e *Expression) eval(expr string, ctx *scope.Context) maybe.Maybe[value.Value] {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return maybe.Nothing[value.Value]()
	}
	v := maybe.OneOf(
		func() maybe.Maybe[value.Value] { return e.literal(expr, ctx) },
		func() maybe.Maybe[value.Value] { return maybe.Of[value.Value](ctx.Get(expr)) },
		func() maybe.Maybe[value.Value] { return e.apply(expr, ctx) },
	)
	if v.IsNothing() {
		tracer().Debugf("expression %q has no value", expr)
	}
	return v
}

// literal parses expr with the data types, the latest registered first.
func (e *Expression) literal(expr string, ctx *scope.Context) maybe.Maybe[value.Value] {
	for i := len(e.dataTypes) - 1; i >= 0; i-- {
		if v := e.dataTypes[i].Parse(expr, e, ctx); !v.IsNothing() {
			tracer().Debugf("%q is a literal of %s", expr, e.dataTypes[i].name)
			return v
		}
	}
	return maybe.Nothing[value.Value]()
}

// apply matches expr as a whole against the function patterns.
func (e *Expression) apply(expr string, ctx *scope.Context) maybe.Maybe[value.Value] {
	v := pattern.MatchWhole(e.candidates, expr, pattern.Env{Eval: e, Ctx: ctx})
	return maybe.Of(v.Output, v.IsMatch())
}

// Print renders v with the printer of the first data type, in registration
// order, responsible for v. If no data type is responsible, Print returns
// an empty string.
func (e *Expression) Print(v value.Value) string {
	for _, dt := range e.dataTypes {
		if s, ok := dt.Print(v); ok {
			return s
		}
	}
	return ""
}

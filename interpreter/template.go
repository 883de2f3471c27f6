package interpreter

import (
	"strings"
	"unicode/utf8"

	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

// Template is an evaluator for templates producing output of type T.
// Text not matched by any statement is lifted into T by a text function,
// and the pieces of output are combined by a join function.
type Template[T any] struct {
	statements []*pattern.Pattern[T]
	expr       *Expression
	ctx        *scope.Context
	text       func(string) T
	join       func([]T) T
}

// NewTemplate creates a template evaluator. Statements are tried in order,
// the first matching statement wins. expr evaluates expressions embedded in
// statements and may be shared with other templates.
func NewTemplate[T any](statements []*pattern.Pattern[T], expr *Expression, ctx *scope.Context,
	text func(string) T, join func([]T) T) *Template[T] {
	//
	if ctx == nil {
		ctx = scope.New(nil)
	}
	return &Template[T]{
		statements: append([]*pattern.Pattern[T](nil), statements...),
		expr:       expr,
		ctx:        ctx,
		text:       text,
		join:       join,
	}
}

// NewStringTemplate creates a template evaluator producing strings.
func NewStringTemplate(statements []*pattern.Pattern[string], expr *Expression, ctx *scope.Context) *Template[string] {
	return NewTemplate(statements, expr, ctx,
		func(s string) string { return s },
		func(parts []string) string { return strings.Join(parts, "") })
}

// Expression returns the expression evaluator of t; nil if there is none.
func (t *Template[T]) Expression() *Expression {
	return t.expr
}

// Context returns the context the evaluator was created with.
func (t *Template[T]) Context() *scope.Context {
	return t.ctx
}

// Evaluate renders tmpl within the evaluator's own context.
func (t *Template[T]) Evaluate(tmpl string) T {
	return t.render(tmpl, t.ctx)
}

// EvaluateWith renders tmpl within ctx. Variables of the evaluator's own
// context not bound in ctx are copied into ctx first. Statements modifying
// the context modify ctx.
func (t *Template[T]) EvaluateWith(tmpl string, ctx *scope.Context) T {
	if ctx == nil {
		return t.Evaluate(tmpl)
	}
	ctx.Inherit(t.ctx)
	return t.render(tmpl, ctx)
}

// Interpret implements pattern.Evaluator. Captures to be interpreted as a
// template are rendered by t; a string output becomes a string value, any
// other output is wrapped as an opaque value. Expressions are delegated to
// the expression evaluator.
func (t *Template[T]) Interpret(text string, target pattern.Target, ctx *scope.Context) maybe.Maybe[value.Value] {
	if target == pattern.AsTemplate {
		out := t.render(text, ctx)
		if s, ok := any(out).(string); ok {
			return maybe.Just(value.String(s))
		}
		return maybe.Just(value.Opaque(out))
	}
	if t.expr == nil {
		return maybe.Nothing[value.Value]()
	}
	return t.expr.eval(text, ctx)
}

// Render renders tmpl within ctx, without inheriting the evaluator's own
// context. Statements use it to render nested bodies.
func (t *Template[T]) Render(tmpl string, ctx *scope.Context) T {
	return t.render(tmpl, ctx)
}

func (t *Template[T]) render(tmpl string, ctx *scope.Context) T {
	env := pattern.Env{Eval: t, Ctx: ctx}
	var parts []T
	var verbatim strings.Builder
	flush := func() {
		if verbatim.Len() > 0 {
			parts = append(parts, t.text(verbatim.String()))
			verbatim.Reset()
		}
	}
	pos := 0
	for pos < len(tmpl) {
		v := pattern.Dispatch(t.statements, tmpl, pos, env)
		if v.IsMatch() && v.Length > 0 {
			tracer().Debugf("template statement matches %q", tmpl[pos:pos+v.Length])
			flush()
			parts = append(parts, v.Output)
			pos += v.Length
			continue
		}
		_, size := utf8.DecodeRuneInString(tmpl[pos:])
		verbatim.WriteString(tmpl[pos : pos+size])
		pos += size
	}
	flush()
	return t.join(parts)
}

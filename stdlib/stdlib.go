package stdlib

import (
	"github.com/tevelee/Eval-sub000/interpreter"
	"github.com/tevelee/Eval-sub000/scope"
)

// NewExpression creates an expression evaluator for the standard grammar.
// ctx may be nil.
func NewExpression(ctx *scope.Context) *interpreter.Expression {
	return interpreter.NewExpression(DataTypes(), Functions(), ctx)
}

// NewTemplate creates a string template evaluator for the standard
// grammar. Template and embedded expressions share ctx, which may be nil.
func NewTemplate(ctx *scope.Context) *interpreter.Template[string] {
	if ctx == nil {
		ctx = scope.New(nil)
	}
	expr := NewExpression(ctx)
	return interpreter.NewStringTemplate(Statements(expr), expr, ctx)
}

package interpreter

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

func numberType() *DataType {
	return NewDataType("number", OfKind(value.NumberKind),
		func(v value.Value) string {
			n, _ := v.AsNumber()
			return strconv.FormatFloat(n, 'f', -1, 64)
		},
		Parser(func(s string) (value.Value, bool) {
			n, err := strconv.ParseFloat(s, 64)
			return value.Number(n), err == nil
		}),
	)
}

// infix creates a naive forward infix operator over numbers.
func infix(op string, f func(x, y float64) float64) *Function {
	return NewFunction(op, pattern.MustNew([]pattern.Element{
		pattern.Var("a", pattern.Expect(value.NumberKind)),
		pattern.Kw(op),
		pattern.Var("b", pattern.Expect(value.NumberKind)),
	}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
		a, _ := vars.Number("a")
		b, _ := vars.Number("b")
		return maybe.Just(value.Number(f(a, b)))
	}, pattern.Name("a "+op+" b")))
}

func plus() *Function  { return infix("+", func(x, y float64) float64 { return x + y }) }
func times() *Function { return infix("*", func(x, y float64) float64 { return x * y }) }

func TestExpressionRegistrationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eval.interpreter")
	defer teardown()
	//
	// functions registered last are tried first and thus bind loosest
	e := NewExpression([]*DataType{numberType()}, []*Function{times(), plus()}, nil)
	v, ok := e.Evaluate("2 + 3 * 4").Get()
	require.True(t, ok)
	assert.Equal(t, value.Number(14), v)

	e = NewExpression([]*DataType{numberType()}, []*Function{plus(), times()}, nil)
	v, ok = e.Evaluate("2 + 3 * 4").Get()
	require.True(t, ok)
	assert.Equal(t, value.Number(20), v)
}

func TestExpressionWithoutValue(t *testing.T) {
	e := NewExpression([]*DataType{numberType()}, []*Function{plus()}, nil)
	assert.True(t, e.Evaluate("hello").IsNothing())
	assert.True(t, e.Evaluate("   ").IsNothing())
	assert.True(t, e.Evaluate("1 +").IsNothing())
}

func TestDataTypeShadowing(t *testing.T) {
	one := NewDataType("one", OfKind(value.StringKind),
		func(v value.Value) string { return "<" + v.String() + ">" },
		Keyword("1", value.String("one")),
	)
	e := NewExpression([]*DataType{numberType(), one}, nil, nil)
	v, _ := e.Evaluate("1").Get()
	assert.Equal(t, value.String("one"), v, "later data types take precedence")
	v, _ = e.Evaluate("2").Get()
	assert.Equal(t, value.Number(2), v)
	assert.Equal(t, "2", e.Print(value.Number(2)))
	assert.Equal(t, `<"one">`, e.Print(value.String("one")))
	assert.Equal(t, "", e.Print(value.Bool(true)))
}

func TestVariablesShadowFunctions(t *testing.T) {
	ctx := scope.New(map[string]value.Value{"1 + 1": value.Number(3)})
	e := NewExpression([]*DataType{numberType()}, []*Function{plus()}, ctx)
	v, _ := e.Evaluate("1 + 1").Get()
	assert.Equal(t, value.Number(3), v)
}

func TestEvaluateWithInheritsContext(t *testing.T) {
	stored := scope.New(map[string]value.Value{"a": value.Number(1), "b": value.Number(2)})
	e := NewExpression([]*DataType{numberType()}, []*Function{plus()}, stored)
	supplied := scope.New(map[string]value.Value{"b": value.Number(20)})
	v, ok := e.EvaluateWith("a + b", supplied).Get()
	require.True(t, ok)
	assert.Equal(t, value.Number(21), v)
	_, ok = supplied.Get("a")
	assert.True(t, ok, "expected stored variables to be copied into the supplied context")
	_, ok = supplied.Debug["a + b"]
	assert.True(t, ok, "expected the match to be recorded in the supplied context")
	assert.Empty(t, stored.Debug)
}

func TestExpressionInterpretTargets(t *testing.T) {
	e := NewExpression([]*DataType{numberType()}, nil, nil)
	v, _ := e.Interpret("1 2", pattern.AsTemplate, nil).Get()
	assert.Equal(t, value.String("1 2"), v)
	v, _ = e.Interpret(" 7 ", pattern.AsExpression, nil).Get()
	assert.Equal(t, value.Number(7), v)
}

// group renders the body between parentheses, dropping the parentheses.
func group() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Open("("),
		pattern.Var("body", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Close(")"),
	}, func(vars pattern.Vars, env pattern.Env) maybe.Maybe[string] {
		v := env.Eval.Interpret(vars.Text("body"), pattern.AsTemplate, env.Ctx)
		return maybe.AndThen[value.Value, string](func(x value.Value) maybe.Maybe[string] {
			s, ok := x.AsString()
			return maybe.Of(s, ok)
		}, v)
	}, pattern.Name("group"))
}

func TestTemplatePassThrough(t *testing.T) {
	tmpl := NewStringTemplate(nil, nil, nil)
	assert.Equal(t, "xyz", tmpl.Evaluate("xyz"))
	tmpl = NewStringTemplate([]*pattern.Pattern[string]{group()}, nil, nil)
	assert.Equal(t, "xyz", tmpl.Evaluate("xyz"))
	assert.Equal(t, "x(y", tmpl.Evaluate("x(y"))
	assert.Equal(t, "", tmpl.Evaluate(""))
}

func TestTemplateNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eval.interpreter")
	defer teardown()
	//
	tmpl := NewStringTemplate([]*pattern.Pattern[string]{group()}, nil, nil)
	assert.Equal(t, "abc", tmpl.Evaluate("(a(b)c)"))
	assert.Equal(t, "x abc y", tmpl.Evaluate("x (a(b)c) y"))
	assert.Equal(t, "ab", tmpl.Evaluate("(a)(b)"))
}

func TestTemplateEmbeddedExpressions(t *testing.T) {
	expr := NewExpression([]*DataType{numberType()}, []*Function{plus()}, nil)
	show := pattern.MustNew([]pattern.Element{
		pattern.Kw("{{"), pattern.Var("x"), pattern.Kw("}}"),
	}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[string] {
		return maybe.Just(expr.Print(vars.Get("x")))
	})
	tmpl := NewStringTemplate([]*pattern.Pattern[string]{show}, expr, scope.New(nil))
	assert.Equal(t, "1 + 2 = 3", tmpl.Evaluate("1 + 2 = {{ 1 + 2 }}"))
	ctx := scope.New(map[string]value.Value{"n": value.Number(4)})
	assert.Equal(t, "n+1 = 5", tmpl.EvaluateWith("n+1 = {{ n + 1 }}", ctx))
	assert.Equal(t, "{{ m }}", tmpl.Evaluate("{{ m }}"), "statements without value pass through")
}

func TestGenericTemplate(t *testing.T) {
	tag := pattern.MustNew([]pattern.Element{
		pattern.Kw("<"), pattern.Var("name", pattern.NotInterpreted()), pattern.Kw(">"),
	}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[[]string] {
		return maybe.Just([]string{"TAG:" + vars.Text("name")})
	})
	tmpl := NewTemplate([]*pattern.Pattern[[]string]{tag}, nil, nil,
		func(s string) []string { return []string{s} },
		func(parts [][]string) []string {
			var all []string
			for _, p := range parts {
				all = append(all, p...)
			}
			return all
		})
	assert.Equal(t, []string{"a", "TAG:b", "c"}, tmpl.Evaluate("a<b>c"))
	out, ok := tmpl.Interpret("<x>", pattern.AsTemplate, scope.New(nil)).Get()
	require.True(t, ok)
	x, _ := out.AsOpaque()
	assert.Equal(t, []string{"TAG:x"}, x)
	assert.True(t, tmpl.Interpret("1", pattern.AsExpression, nil).IsNothing(),
		"template without expression evaluator cannot interpret expressions")
	assert.Equal(t, []string{"TAG:a", " ", "TAG:b"}, tmpl.Evaluate("<a> <b>"))
}

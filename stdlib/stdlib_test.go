package stdlib

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

func TestArithmeticPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eval.stdlib")
	defer teardown()
	//
	expr := NewExpression(nil)
	for _, tc := range []struct {
		in  string
		out float64
	}{
		{"2 + 3 * 4", 14},
		{"2 * 3 + 4", 10},
		{"10 - 2 - 3", 5},
		{"10 - 2 + 3", 11},
		{"12 / 2 / 3", 2},
		{"7 % 4", 3},
		{"-3 - 2", -5},
		{"2 - -3", 5},
		{"(1 + 2) * 3", 9},
		{"1 + (2 + 3)", 6},
		{"((1) + (2))", 3},
		{"1.5e1 + 1", 16},
	} {
		v, ok := expr.Evaluate(tc.in).Get()
		require.True(t, ok, "expected %q to have a value", tc.in)
		assert.Equal(t, value.Number(tc.out), v, tc.in)
	}
}

func TestExpressionWithoutValue(t *testing.T) {
	expr := NewExpression(nil)
	for _, in := range []string{"hello", "", "1 +", "(1 + 2", "1 / 0", "'a' * 2"} {
		assert.True(t, expr.Evaluate(in).IsNothing(), "expected %q to have no value", in)
	}
}

func TestLogicAndComparison(t *testing.T) {
	ctx := scope.FromGo(map[string]interface{}{
		"xs":   []int{1, 2, 3},
		"user": map[string]interface{}{"name": "Eval"},
	})
	expr := NewExpression(ctx)
	for _, tc := range []struct {
		in  string
		out bool
	}{
		{"10 < 21", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"1 + 1 == 2", true},
		{"'a' != 'b'", true},
		{"'b' > 'a'", true},
		{"not true", false},
		{"!false", true},
		{"true and false", false},
		{"false or true", true},
		{"1 < 2 and 2 < 3", true},
		{"not false and false", false},
		{"2 in xs", true},
		{"5 in [1, 2, 3]", false},
		{"'name' in user", true},
		{"'ell' in 'hello'", true},
		{"'hello' starts with 'he'", true},
		{"'hello' starts with 'lo'", false},
		{"'hello' ends with 'lo'", true},
		{"xs exists", true},
		{"missing exists", false},
		{"not missing exists", true},
		{"(missing exists) or true", true},
		{"12pt < 1pt", false},
	} {
		v, ok := expr.Evaluate(tc.in).Get()
		require.True(t, ok, "expected %q to have a value", tc.in)
		assert.Equal(t, value.Bool(tc.out), v, tc.in)
	}
}

func TestCollectionsAndBuiltins(t *testing.T) {
	ctx := scope.FromGo(map[string]interface{}{
		"xs":   []int{10, 20, 30},
		"user": map[string]interface{}{"name": "Eval", "langs": []string{"go"}},
	})
	expr := NewExpression(ctx)
	for _, tc := range []struct {
		in  string
		out value.Value
	}{
		{"xs[1]", value.Number(20)},
		{"xs.count", value.Number(3)},
		{"xs.last", value.Number(30)},
		{"user.name", value.String("Eval")},
		{"user['name']", value.String("Eval")},
		{"user.langs[0]", value.String("go")},
		{"len(xs)", value.Number(3)},
		{"len('héllo')", value.Number(5)},
		{"max(1, 2)", value.Number(2)},
		{"min(max(1, 4), 3)", value.Number(3)},
		{"max(xs)", value.Number(30)},
		{"[1, 2] + [3]", value.Seq(value.Number(1), value.Number(2), value.Number(3))},
		{"'a' + 'b'", value.String("ab")},
		{"1 < 2 ? 'yes' : 'no'", value.String("yes")},
		{"false ? 1 : true ? 2 : 3", value.Number(2)},
	} {
		v, ok := expr.Evaluate(tc.in).Get()
		require.True(t, ok, "expected %q to have a value", tc.in)
		assert.True(t, tc.out.Equal(v), "%s: expected %s, got %s", tc.in, tc.out, v)
	}
}

func TestDimensions(t *testing.T) {
	expr := NewExpression(nil)
	v, ok := expr.Evaluate("12pt + 3pt").Get()
	require.True(t, ok)
	assert.Equal(t, value.Opaque(dimen.DU(15*dimen.PT)), v)
	assert.Equal(t, "15pt", expr.Print(v))
	v, ok = expr.Evaluate("2 * 1.5pt").Get()
	require.True(t, ok)
	assert.Equal(t, "3pt", expr.Print(v))
	v, ok = expr.Evaluate("0.5pt").Get()
	require.True(t, ok)
	assert.Equal(t, value.Opaque(dimen.DU(32646)), v, "fractional points round to the nearest sp")
	assert.Equal(t, "0.5pt", expr.Print(v))
	v, ok = expr.Evaluate("-2pt").Get()
	require.True(t, ok)
	assert.Equal(t, value.Opaque(-2*dimen.PT), v)
	v, ok = expr.Evaluate("12").Get()
	require.True(t, ok)
	assert.Equal(t, value.NumberKind, v.Kind(), "numbers without unit are not dimensions")
	v, ok = expr.Evaluate("80%").Get()
	require.True(t, ok)
	assert.Equal(t, value.OpaqueKind, v.Kind())
	assert.True(t, isPercent(v))
}

func TestPrinters(t *testing.T) {
	expr := NewExpression(nil)
	assert.Equal(t, "14", expr.Print(value.Number(14)))
	assert.Equal(t, "0.5", expr.Print(value.Number(0.5)))
	assert.Equal(t, "true", expr.Print(value.Bool(true)))
	assert.Equal(t, "text", expr.Print(value.String("text")))
	assert.Equal(t, "", expr.Print(value.Nil()))
}

func TestTemplateStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eval.stdlib")
	defer teardown()
	//
	tmpl := NewTemplate(nil)
	ctx := scope.FromGo(map[string]interface{}{"name": "Eval", "xs": []int{1, 2}})
	for _, tc := range []struct {
		in, out string
	}{
		{"{% if 10 < 21 %}Hello{% endif %} {{ name }}!", "Hello Eval!"},
		{"xyz", "xyz"},
		{"{{ 2 + 3 * 4 }}", "14"},
		{"a{# note #}b", "ab"},
		{"{% raw %}{{ name }}{% endraw %}", "{{ name }}"},
		{"{{ missing }}", "{{ missing }}"},
		{"{% if false %}a{% else %}b{% endif %}", "b"},
		{"{% if true %}[{% if false %}x{% endif %}]{% endif %}", "[]"},
		{"{% for x in xs %}{{ index }}:{{ x }} {% endfor %}", "0:1 1:2 "},
		{"{% set y = 2 * 3 %}y={{ y }}", "y=6"},
	} {
		assert.Equal(t, tc.out, tmpl.EvaluateWith(tc.in, ctx), tc.in)
	}
	_, ok := ctx.Get("x")
	assert.False(t, ok, "loop variable must not leak out of the loop")
}

func TestTemplateDebugTrace(t *testing.T) {
	ctx := scope.New(map[string]value.Value{"name": value.String("Eval")})
	tmpl := NewTemplate(ctx)
	assert.Equal(t, "Hi Eval", tmpl.Evaluate("Hi {{ name }}"))
	trace, ok := ctx.Debug["{{ name }}"]
	require.True(t, ok, "expected the print statement in the debug trace")
	assert.Equal(t, "print", trace.Pattern)
	assert.Equal(t, "Eval", trace.Output)
	assert.Contains(t, ctx.DebugTree(), "print")
}

func TestOperandSplitting(t *testing.T) {
	assert.True(t, isOperand("3 * 4", additive))
	assert.False(t, isOperand("2 - 3", additive))
	assert.True(t, isOperand("-3", additive))
	assert.True(t, isOperand("(2 - 3)", additive))
	assert.True(t, isOperand("1e-3", additive))
	assert.False(t, isOperand("2)", additive))
	assert.True(t, isOperand("'a - b'", additive))
	assert.False(t, isOperand("a and b", conjunction))
	assert.True(t, isOperand("brand", conjunction))
	assert.True(t, isOperand("index", membership))
}

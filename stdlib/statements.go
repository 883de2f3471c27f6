package stdlib

import (
	"strings"

	"github.com/tevelee/Eval-sub000/interpreter"
	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/value"
)

// Statements returns the template statements of the standard grammar, in
// order of priority. expr prints the values of {{ … }} statements.
func Statements(expr *interpreter.Expression) []*pattern.Pattern[string] {
	return []*pattern.Pattern[string]{
		Comment(),
		Raw(),
		Print(expr),
		Set(),
		IfElse(),
		If(),
		For(),
	}
}

// Comment drops "{# … #}".
func Comment() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Kw("{#"),
		pattern.Var("comment", pattern.NotInterpreted()),
		pattern.Kw("#}"),
	}, func(pattern.Vars, pattern.Env) maybe.Maybe[string] {
		return maybe.Just("")
	}, pattern.Name("comment"))
}

// Raw copies the body of "{% raw %}…{% endraw %}" verbatim.
func Raw() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Open("{% raw %}"),
		pattern.Var("body", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Close("{% endraw %}"),
	}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[string] {
		return maybe.Just(vars.Text("body"))
	}, pattern.Name("raw"))
}

// Print renders the value of the expression of "{{ expr }}" with the
// printers of expr. Expressions without a value are not matched, and
// remain in the output as they are.
func Print(expr *interpreter.Expression) *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Kw("{{"),
		pattern.Var("value"),
		pattern.Kw("}}"),
	}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[string] {
		return maybe.Just(expr.Print(vars.Get("value")))
	}, pattern.Name("print"))
}

// Set binds a variable in the context of the template: "{% set x = 1 %}".
func Set() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Kw("{% set"),
		pattern.Var("name", pattern.NotInterpreted(), pattern.Map(identifier)),
		pattern.Kw("="),
		pattern.Var("value"),
		pattern.Kw("%}"),
	}, func(vars pattern.Vars, env pattern.Env) maybe.Maybe[string] {
		if env.Ctx == nil {
			return maybe.Nothing[string]()
		}
		env.Ctx.Set(vars.Text("name"), vars.Get("value"))
		return maybe.Just("")
	}, pattern.Name("set"))
}

// IfElse renders one of two bodies: "{% if c %}…{% else %}…{% endif %}".
func IfElse() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Open("{% if"),
		pattern.Var("cond", pattern.Expect(value.BoolKind)),
		pattern.Kw("%}"),
		pattern.Var("then", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Kw("{% else %}"),
		pattern.Var("else", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Close("{% endif %}"),
	}, func(vars pattern.Vars, env pattern.Env) maybe.Maybe[string] {
		if c, _ := vars.Bool("cond"); c {
			return render(vars.Text("then"), env)
		}
		return render(vars.Text("else"), env)
	}, pattern.Name("if-else"))
}

// If renders its body if the condition holds: "{% if c %}…{% endif %}".
func If() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Open("{% if"),
		pattern.Var("cond", pattern.Expect(value.BoolKind)),
		pattern.Kw("%}"),
		pattern.Var("body", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Close("{% endif %}"),
	}, func(vars pattern.Vars, env pattern.Env) maybe.Maybe[string] {
		if c, _ := vars.Bool("cond"); c {
			return render(vars.Text("body"), env)
		}
		return maybe.Just("")
	}, pattern.Name("if"))
}

// For renders its body once per item of an array:
// "{% for x in xs %}…{% endfor %}". Every iteration runs in a scope of its
// own, binding the item and its position "index".
func For() *pattern.Pattern[string] {
	return pattern.MustNew([]pattern.Element{
		pattern.Open("{% for"),
		pattern.Var("item", pattern.Greedy(), pattern.NotInterpreted(), pattern.Map(identifier)),
		pattern.Kw("in"),
		pattern.Var("items", pattern.Expect(value.SeqKind)),
		pattern.Kw("%}"),
		pattern.Var("body", pattern.NotInterpreted(), pattern.NotTrimmed()),
		pattern.Close("{% endfor %}"),
	}, loop, pattern.Name("for"))
}

func loop(vars pattern.Vars, env pattern.Env) maybe.Maybe[string] {
	if env.Ctx == nil {
		return maybe.Nothing[string]()
	}
	name, body := vars.Text("item"), vars.Text("body")
	var out strings.Builder
	for i, x := range vars.Get("items").Items() {
		env.Ctx.Push()
		env.Ctx.Set(name, x)
		env.Ctx.Set("index", value.Number(float64(i)))
		s, ok := render(body, env).Get()
		if err := env.Ctx.Pop(); err != nil || !ok {
			tracer().Errorf("for loop over %s: cannot render body", name)
			return maybe.Nothing[string]()
		}
		out.WriteString(s)
	}
	return maybe.Just(out.String())
}

// render renders a nested body with the template evaluator of env.
func render(body string, env pattern.Env) maybe.Maybe[string] {
	if env.Eval == nil {
		return maybe.Nothing[string]()
	}
	return maybe.AndThen[value.Value, string](func(v value.Value) maybe.Maybe[string] {
		s, ok := v.AsString()
		return maybe.Of(s, ok)
	}, env.Eval.Interpret(body, pattern.AsTemplate, env.Ctx))
}

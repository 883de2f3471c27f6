package stdlib

import (
	"math"
	"strings"

	"github.com/tevelee/Eval-sub000/interpreter"
	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/value"
)

// Functions returns the functions of the standard grammar, in registration
// order. Functions binding tighter are registered first.
func Functions() []*interpreter.Function {
	return []*interpreter.Function{
		Parentheses(),
		Builtins(),
		Member(),
		Subscript(),
		Exists(),
		Not(),
		interpreter.NewFunction("multiplicative",
			binary("*", multiplicative, multiply),
			binary("/", multiplicative, divide),
			binary("%", multiplicative, modulo),
		),
		interpreter.NewFunction("additive",
			binary("+", additive, add),
			binary("-", additive, subtract),
		),
		interpreter.NewFunction("comparison",
			binary("==", comparison, equal),
			binary("!=", comparison, notEqual),
			binary("<=", comparison, ordering(func(c int) bool { return c <= 0 })),
			binary(">=", comparison, ordering(func(c int) bool { return c >= 0 })),
			binary("<", comparison, ordering(func(c int) bool { return c < 0 })),
			binary(">", comparison, ordering(func(c int) bool { return c > 0 })),
		),
		// Both affix operators test the left operand against the right one,
		// "'hello' starts with 'he'" holds.
		interpreter.NewFunction("affix",
			binary("starts with", affix, stringPredicate(strings.HasPrefix)),
			binary("ends with", affix, stringPredicate(strings.HasSuffix)),
		),
		interpreter.NewFunction("in", binary("in", membership, contains)),
		interpreter.NewFunction("and", binary("and", conjunction, logical(func(x, y bool) bool { return x && y }))),
		interpreter.NewFunction("or", binary("or", disjunction, logical(func(x, y bool) bool { return x || y }))),
		Conditional(),
	}
}

// Parentheses groups a sub-expression: "(a + b) * c".
func Parentheses() *interpreter.Function {
	return interpreter.NewFunction("parentheses",
		pattern.MustNew([]pattern.Element{
			pattern.Open("("), pattern.Var("body"), pattern.Close(")"),
		}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
			return maybe.Just(vars.Get("body"))
		}, pattern.Name("(body)")),
	)
}

// Builtins are the functions len(x), max(a, b), min(a, b), and max/min over
// a single array argument.
func Builtins() *interpreter.Function {
	call := func(name string, args ...*pattern.Variable) []pattern.Element {
		elements := []pattern.Element{pattern.Kw(name), pattern.Open("(")}
		for i, arg := range args {
			if i > 0 {
				elements = append(elements, pattern.Kw(","))
			}
			elements = append(elements, arg)
		}
		return append(elements, pattern.Close(")"))
	}
	return interpreter.NewFunction("builtins",
		pattern.MustNew(call("len", pattern.Var("x")), length, pattern.Name("len(x)")),
		pattern.MustNew(call("max", pattern.Var("a", pattern.Greedy()), pattern.Var("b")),
			extremum(1), pattern.Name("max(a, b)")),
		pattern.MustNew(call("min", pattern.Var("a", pattern.Greedy()), pattern.Var("b")),
			extremum(-1), pattern.Name("min(a, b)")),
		pattern.MustNew(call("max", pattern.Var("xs", pattern.Expect(value.SeqKind))),
			extremumOf(1), pattern.Name("max(xs)")),
		pattern.MustNew(call("min", pattern.Var("xs", pattern.Expect(value.SeqKind))),
			extremumOf(-1), pattern.Name("min(xs)")),
	)
}

func length(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
	switch x := vars.Get("x"); x.Kind() {
	case value.SeqKind, value.MapKind, value.StringKind:
		return maybe.Just(value.Number(float64(x.Len())))
	}
	return maybe.Nothing[value.Value]()
}

// extremum selects a if it compares to b with sign dir, else b.
func extremum(dir int) func(pattern.Vars, pattern.Env) maybe.Maybe[value.Value] {
	return func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
		a, b := vars.Get("a"), vars.Get("b")
		c, ok := compare(a, b)
		if !ok {
			return maybe.Nothing[value.Value]()
		}
		if c*dir >= 0 {
			return maybe.Just(a)
		}
		return maybe.Just(b)
	}
}

func extremumOf(dir int) func(pattern.Vars, pattern.Env) maybe.Maybe[value.Value] {
	return func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
		items := vars.Get("xs").Items()
		if len(items) == 0 {
			return maybe.Nothing[value.Value]()
		}
		best := items[0]
		for _, x := range items[1:] {
			c, ok := compare(x, best)
			if !ok {
				return maybe.Nothing[value.Value]()
			}
			if c*dir > 0 {
				best = x
			}
		}
		return maybe.Just(best)
	}
}

// Member accesses entries of maps by name, "user.name", and the
// properties count, first and last of arrays.
func Member() *interpreter.Function {
	return interpreter.NewFunction("member",
		pattern.MustNew([]pattern.Element{
			pattern.Var("object"),
			pattern.Kw("."),
			pattern.Var("key", pattern.NotInterpreted(), pattern.Map(identifier)),
		}, member, pattern.Name("object.key"), pattern.Backward()),
	)
}

func identifier(x value.Value) maybe.Maybe[value.Value] {
	s, _ := x.AsString()
	if s == "" {
		return maybe.Nothing[value.Value]()
	}
	for i, r := range s {
		if !isIdent(r) || (i == 0 && r >= '0' && r <= '9') {
			return maybe.Nothing[value.Value]()
		}
	}
	return maybe.Just(x)
}

func member(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
	key := vars.Text("key")
	var entries map[string]value.Value
	var items []value.Value
	switch m := vars.Get("object").Match(); m {
	case m.Map(&entries):
		if x, ok := entries[key]; ok {
			return maybe.Just(x)
		}
		if key == "count" {
			return maybe.Just(value.Number(float64(len(entries))))
		}
	case m.Seq(&items):
		switch {
		case key == "count":
			return maybe.Just(value.Number(float64(len(items))))
		case key == "first" && len(items) > 0:
			return maybe.Just(items[0])
		case key == "last" && len(items) > 0:
			return maybe.Just(items[len(items)-1])
		}
	}
	return maybe.Nothing[value.Value]()
}

// Subscript indexes arrays and strings by number and maps by key:
// "xs[0]", "m['key']".
func Subscript() *interpreter.Function {
	return interpreter.NewFunction("subscript",
		pattern.MustNew([]pattern.Element{
			pattern.Var("object"),
			pattern.Open("["),
			pattern.Var("index"),
			pattern.Close("]"),
		}, subscript, pattern.Name("object[index]"), pattern.Backward()),
	)
}

func subscript(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
	object, index := vars.Get("object"), vars.Get("index")
	if key, ok := index.AsString(); ok {
		x, found := object.Lookup(key)
		return maybe.Of(x, found)
	}
	n, ok := index.AsNumber()
	if !ok || n != math.Trunc(n) || n < 0 {
		return maybe.Nothing[value.Value]()
	}
	i := int(n)
	switch object.Kind() {
	case value.SeqKind:
		if items := object.Items(); i < len(items) {
			return maybe.Just(items[i])
		}
	case value.StringKind:
		s, _ := object.AsString()
		if runes := []rune(s); i < len(runes) {
			return maybe.Just(value.String(string(runes[i])))
		}
	}
	return maybe.Nothing[value.Value]()
}

// Exists is the suffix operator "x exists". It is true if x has a value.
// It binds tighter than the prefix operator not: "not x exists" is
// "not (x exists)".
func Exists() *interpreter.Function {
	return interpreter.NewFunction("exists",
		pattern.MustNew([]pattern.Element{
			pattern.Var("x", pattern.AcceptsNil()),
			pattern.Kw("exists"),
		}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
			return maybe.Just(value.Bool(!vars.Get("x").IsNil()))
		}, pattern.Name("x exists")),
	)
}

// Not negates booleans, spelled "not x" or "!x".
func Not() *interpreter.Function {
	negate := func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
		b, _ := vars.Bool("x")
		return maybe.Just(value.Bool(!b))
	}
	return interpreter.NewFunction("not",
		pattern.MustNew([]pattern.Element{
			pattern.Kw("not"), pattern.Var("x", pattern.Expect(value.BoolKind)),
		}, negate, pattern.Name("not x")),
		pattern.MustNew([]pattern.Element{
			pattern.Kw("!"), pattern.Var("x", pattern.Expect(value.BoolKind)),
		}, negate, pattern.Name("!x")),
	)
}

// Conditional is the ternary operator "c ? a : b". It binds loosest of all
// operators and nests to the right.
func Conditional() *interpreter.Function {
	return interpreter.NewFunction("conditional",
		pattern.MustNew([]pattern.Element{
			pattern.Var("cond", pattern.Expect(value.BoolKind)),
			pattern.Kw("?"),
			pattern.Var("then", pattern.Greedy()),
			pattern.Kw(":"),
			pattern.Var("else"),
		}, func(vars pattern.Vars, _ pattern.Env) maybe.Maybe[value.Value] {
			if c, _ := vars.Bool("cond"); c {
				return maybe.Just(vars.Get("then"))
			}
			return maybe.Just(vars.Get("else"))
		}, pattern.Name("cond ? then : else")),
	)
}

package stdlib

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/value"
)

// Operators of the same precedence level. A binary operator rejects a right
// operand containing an operator of its own level outside of brackets and
// quotes, which makes operators of a level left-associative.
var (
	multiplicative = []string{"*", "/", "%"}
	additive       = []string{"+", "-"}
	comparison     = []string{"==", "!=", "<=", ">=", "<", ">"}
	affix          = []string{"starts with", "ends with"}
	membership     = []string{"in"}
	conjunction    = []string{"and"}
	disjunction    = []string{"or"}
)

// binary creates the pattern of a binary infix operator. The pattern
// matches backward, so the right operand is the suffix of the input
// following the last matching occurrence of op.
func binary(op string, level []string, apply func(a, b value.Value) maybe.Maybe[value.Value]) *pattern.Pattern[value.Value] {
	return pattern.MustNew([]pattern.Element{
		pattern.Var("lhs"),
		pattern.Kw(op),
		pattern.Var("rhs", pattern.Greedy(), pattern.NotInterpreted(), pattern.Map(operandOf(level))),
	}, func(vars pattern.Vars, env pattern.Env) maybe.Maybe[value.Value] {
		if env.Eval == nil {
			return maybe.Nothing[value.Value]()
		}
		rhs := env.Eval.Interpret(vars.Text("rhs"), pattern.AsExpression, env.Ctx)
		return maybe.AndThen[value.Value, value.Value](func(b value.Value) maybe.Maybe[value.Value] {
			return apply(vars.Get("lhs"), b)
		}, rhs)
	}, pattern.Name("a "+op+" b"), pattern.Backward())
}

// operandOf returns a mapper accepting the raw text of a right operand, if
// it is balanced and has no top-level operator of level.
func operandOf(level []string) pattern.Mapper {
	return func(x value.Value) maybe.Maybe[value.Value] {
		s, ok := x.AsString()
		if !ok || s == "" || !isOperand(s, level) {
			return maybe.Nothing[value.Value]()
		}
		return maybe.Just(x)
	}
}

// isOperand is false if s has unbalanced brackets or quotes, or if one of
// ops occurs in s as a binary operator outside of brackets and quotes.
func isOperand(s string, ops []string) bool {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			continue
		case c == '\'' || c == '"':
			quote = c
			continue
		case c == '(' || c == '[':
			depth++
			continue
		case c == ')' || c == ']':
			depth--
			if depth < 0 {
				return false
			}
			continue
		}
		if depth > 0 {
			continue
		}
		for _, op := range ops {
			if strings.HasPrefix(s[i:], op) && isBinaryAt(s, i, op) {
				return false
			}
		}
	}
	return depth == 0 && quote == 0
}

// isBinaryAt reports whether the occurrence of op at position i of s is
// used as a binary operator.
func isBinaryAt(s string, i int, op string) bool {
	r, _ := utf8.DecodeRuneInString(op)
	if isIdent(r) { // word operator, must not be part of an identifier
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[i+len(op):])
		return (i == 0 || !isIdent(before)) && (i+len(op) == len(s) || !isIdent(after))
	}
	left := strings.TrimRightFunc(s[:i], unicode.IsSpace)
	right := strings.TrimSpace(s[i+len(op):])
	if left == "" || right == "" {
		return false
	}
	prev := left[len(left)-1]
	if strings.IndexByte("+-*/%<>=!?:,", prev) >= 0 {
		return false // unary sign or part of a longer operator
	}
	if (op == "+" || op == "-") && (prev == 'e' || prev == 'E') && len(left) == i &&
		len(left) > 1 && left[len(left)-2] >= '0' && left[len(left)-2] <= '9' {
		return false // exponent of a number literal
	}
	return true
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// --- Arithmetic ------------------------------------------------------------

func add(a, b value.Value) maybe.Maybe[value.Value] {
	var x float64
	var s string
	var xs []value.Value
	switch m := a.Match(); m {
	case m.Number(&x):
		if y, ok := b.AsNumber(); ok {
			return maybe.Just(value.Number(x + y))
		}
	case m.String(&s):
		if t, ok := b.AsString(); ok {
			return maybe.Just(value.String(s + t))
		}
	case m.Seq(&xs):
		if b.Kind() == value.SeqKind {
			joined := append(append([]value.Value{}, xs...), b.Items()...)
			return maybe.Just(value.Seq(joined...))
		}
	}
	if isDimension(a) && isDimension(b) {
		return maybe.Just(value.Opaque(dimension(a) + dimension(b)))
	}
	return maybe.Nothing[value.Value]()
}

func subtract(a, b value.Value) maybe.Maybe[value.Value] {
	if x, ok := a.AsNumber(); ok {
		if y, ok := b.AsNumber(); ok {
			return maybe.Just(value.Number(x - y))
		}
	}
	if isDimension(a) && isDimension(b) {
		return maybe.Just(value.Opaque(dimension(a) - dimension(b)))
	}
	return maybe.Nothing[value.Value]()
}

func multiply(a, b value.Value) maybe.Maybe[value.Value] {
	x, xnum := a.AsNumber()
	y, ynum := b.AsNumber()
	switch {
	case xnum && ynum:
		return maybe.Just(value.Number(x * y))
	case isDimension(a) && ynum:
		return maybe.Just(value.Opaque(scale(dimension(a), y)))
	case xnum && isDimension(b):
		return maybe.Just(value.Opaque(scale(dimension(b), x)))
	}
	return maybe.Nothing[value.Value]()
}

func divide(a, b value.Value) maybe.Maybe[value.Value] {
	y, ok := b.AsNumber()
	if !ok || y == 0 {
		return maybe.Nothing[value.Value]()
	}
	if x, ok := a.AsNumber(); ok {
		return maybe.Just(value.Number(x / y))
	}
	if isDimension(a) {
		return maybe.Just(value.Opaque(scale(dimension(a), 1/y)))
	}
	return maybe.Nothing[value.Value]()
}

func modulo(a, b value.Value) maybe.Maybe[value.Value] {
	x, xok := a.AsNumber()
	y, yok := b.AsNumber()
	if !xok || !yok || y == 0 {
		return maybe.Nothing[value.Value]()
	}
	return maybe.Just(value.Number(float64(int64(x) % int64(y))))
}

// --- Comparison ------------------------------------------------------------

// compare orders numbers, strings, dates and dimensions. It reports false
// for values of different or unordered kinds.
func compare(a, b value.Value) (int, bool) {
	sign := func(less, greater bool) (int, bool) {
		switch {
		case less:
			return -1, true
		case greater:
			return 1, true
		}
		return 0, true
	}
	if a.Kind() != b.Kind() {
		return 0, false
	}
	switch a.Kind() {
	case value.NumberKind:
		x, _ := a.AsNumber()
		y, _ := b.AsNumber()
		return sign(x < y, x > y)
	case value.StringKind:
		x, _ := a.AsString()
		y, _ := b.AsString()
		return strings.Compare(x, y), true
	case value.DateKind:
		x, _ := a.AsDate()
		y, _ := b.AsDate()
		return sign(x.Before(y), x.After(y))
	}
	if isDimension(a) && isDimension(b) {
		x, y := dimension(a), dimension(b)
		return sign(x < y, x > y)
	}
	return 0, false
}

func ordering(accept func(int) bool) func(a, b value.Value) maybe.Maybe[value.Value] {
	return func(a, b value.Value) maybe.Maybe[value.Value] {
		c, ok := compare(a, b)
		if !ok {
			return maybe.Nothing[value.Value]()
		}
		return maybe.Just(value.Bool(accept(c)))
	}
}

func equal(a, b value.Value) maybe.Maybe[value.Value] {
	return maybe.Just(value.Bool(a.Equal(b)))
}

func notEqual(a, b value.Value) maybe.Maybe[value.Value] {
	return maybe.Just(value.Bool(!a.Equal(b)))
}

// --- Strings and collections -----------------------------------------------

func stringPredicate(pred func(s, t string) bool) func(a, b value.Value) maybe.Maybe[value.Value] {
	return func(a, b value.Value) maybe.Maybe[value.Value] {
		s, sok := a.AsString()
		t, tok := b.AsString()
		if !sok || !tok {
			return maybe.Nothing[value.Value]()
		}
		return maybe.Just(value.Bool(pred(s, t)))
	}
}

// contains is the "in" operator: element of a sequence, key of a map, or
// substring of a string.
func contains(a, b value.Value) maybe.Maybe[value.Value] {
	var items []value.Value
	var entries map[string]value.Value
	var s string
	switch m := b.Match(); m {
	case m.Seq(&items):
		for _, x := range items {
			if x.Equal(a) {
				return maybe.Just(value.Bool(true))
			}
		}
		return maybe.Just(value.Bool(false))
	case m.Map(&entries):
		if key, ok := a.AsString(); ok {
			_, found := entries[key]
			return maybe.Just(value.Bool(found))
		}
	case m.String(&s):
		if sub, ok := a.AsString(); ok {
			return maybe.Just(value.Bool(strings.Contains(s, sub)))
		}
	}
	return maybe.Nothing[value.Value]()
}

// --- Logic -----------------------------------------------------------------

func logical(op func(x, y bool) bool) func(a, b value.Value) maybe.Maybe[value.Value] {
	return func(a, b value.Value) maybe.Maybe[value.Value] {
		x, xok := a.AsBool()
		y, yok := b.AsBool()
		if !xok || !yok {
			return maybe.Nothing[value.Value]()
		}
		return maybe.Just(value.Bool(op(x, y)))
	}
}

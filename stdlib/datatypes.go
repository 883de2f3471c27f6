package stdlib

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	fp "github.com/tevelee/Eval-sub000"
	"github.com/tevelee/Eval-sub000/interpreter"
	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

// DataTypes returns the data types of the standard grammar, in
// registration order.
func DataTypes() []*interpreter.DataType {
	return []*interpreter.DataType{
		Number(),
		Bool(),
		String(),
		Array(),
		Date(),
		Dimension(),
		Percent(),
	}
}

// --- Numbers ---------------------------------------------------------------

// Number is the data type of floating point numbers, with literals like
// "42", "-1.5", "2e3" and "pi".
func Number() *interpreter.DataType {
	return interpreter.NewDataType("number",
		interpreter.OfKind(value.NumberKind),
		fp.Compose(number, formatNumber),
		interpreter.Parser(parseNumber),
		interpreter.Keyword("pi", value.Number(math.Pi)),
	)
}

func parseNumber(s string) (value.Value, bool) {
	if !isNumeric(s) {
		return value.Nil(), false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Nil(), false
	}
	return value.Number(n), true
}

// isNumeric rejects input strconv.ParseFloat would accept but which is not
// a decimal literal, e.g. "Inf" or "0x10".
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == 'e' || r == 'E':
		case (r == '-' || r == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return false
		}
	}
	return digits > 0
}

func number(v value.Value) float64 {
	n, _ := v.AsNumber()
	return n
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// --- Booleans --------------------------------------------------------------

// Bool is the data type of "true" and "false".
func Bool() *interpreter.DataType {
	return interpreter.NewDataType("bool",
		interpreter.OfKind(value.BoolKind),
		func(v value.Value) string {
			b, _ := v.AsBool()
			return strconv.FormatBool(b)
		},
		interpreter.Keyword("true", value.Bool(true)),
		interpreter.Keyword("false", value.Bool(false)),
	)
}

// --- Strings ---------------------------------------------------------------

// String is the data type of strings, with literals in single or double
// quotes. The quote character must not occur inside the literal.
func String() *interpreter.DataType {
	return interpreter.NewDataType("string",
		interpreter.OfKind(value.StringKind),
		func(v value.Value) string {
			s, _ := v.AsString()
			return s
		},
		interpreter.Parser(parseString),
	)
}

func parseString(s string) (value.Value, bool) {
	if len(s) < 2 {
		return value.Nil(), false
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return value.Nil(), false
	}
	inner := s[1 : len(s)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return value.Nil(), false
	}
	return value.String(inner), true
}

// --- Arrays ----------------------------------------------------------------

// Array is the data type of sequences, with literals like "[1, 'a', x]".
// Items of a literal are evaluated as expressions.
func Array() *interpreter.DataType {
	return interpreter.NewDataType("array",
		interpreter.OfKind(value.SeqKind),
		func(v value.Value) string {
			return v.String()
		},
		parseArray,
	)
}

func parseArray(s string, ev pattern.Evaluator, ctx *scope.Context) maybe.Maybe[value.Value] {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return maybe.Nothing[value.Value]()
	}
	parts, ok := splitTopLevel(s[1:len(s)-1], ',')
	if !ok {
		return maybe.Nothing[value.Value]()
	}
	items := make([]value.Value, 0, len(parts))
	for _, part := range parts {
		item, ok := ev.Interpret(part, pattern.AsExpression, ctx).Get()
		if !ok {
			return maybe.Nothing[value.Value]()
		}
		items = append(items, item)
	}
	return maybe.Just(value.Seq(items...))
}

// splitTopLevel splits s at occurrences of sep outside of brackets and
// quotes. It reports false for unbalanced brackets. Blank input yields no
// parts.
func splitTopLevel(s string, sep byte) ([]string, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
			if depth < 0 {
				return nil, false
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	if depth != 0 || quote != 0 {
		return nil, false
	}
	return append(parts, s[start:]), true
}

// --- Dates -----------------------------------------------------------------

// Date is the data type of points in time. Its only literal is "now".
func Date() *interpreter.DataType {
	return interpreter.NewDataType("date",
		interpreter.OfKind(value.DateKind),
		fp.Compose(date, formatDate),
		func(s string, _ pattern.Evaluator, _ *scope.Context) maybe.Maybe[value.Value] {
			if s == "now" {
				return maybe.Just(value.Date(time.Now()))
			}
			return maybe.Nothing[value.Value]()
		},
	)
}

func date(v value.Value) time.Time {
	t, _ := v.AsDate()
	return t
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// --- Dimensions and percentages --------------------------------------------

// Dimension is the data type of typesetting dimensions, with literals in
// points like "12pt" or "0.5pt". Dimensions are opaque values holding a
// dimen.DU.
func Dimension() *interpreter.DataType {
	return interpreter.NewDataType("dimension",
		isDimension,
		fp.Compose(dimension, formatDimension),
		interpreter.Parser(parseDimension),
	)
}

func parseDimension(s string) (value.Value, bool) {
	num := strings.TrimSuffix(s, "pt")
	if num == s || !isNumeric(num) {
		return value.Nil(), false
	}
	if du, _, err := dimen.Parse(s); err == nil {
		return value.Opaque(du), true
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return value.Nil(), false
	}
	return value.Opaque(scale(dimen.PT, n)), true
}

func isDimension(v value.Value) bool {
	x, ok := v.AsOpaque()
	if !ok {
		return false
	}
	_, ok = x.(dimen.DU)
	return ok
}

func dimension(v value.Value) dimen.DU {
	x, _ := v.AsOpaque()
	du, _ := x.(dimen.DU)
	return du
}

// formatDimension prints du in points, rounded to 1/10000 pt.
func formatDimension(du dimen.DU) string {
	pt := math.Round(float64(du)/float64(dimen.PT)*1e4) / 1e4
	return formatNumber(pt) + "pt"
}

// Percent is the data type of integral percentages like "80%". Percentages
// are opaque values holding a percent.Percent.
func Percent() *interpreter.DataType {
	return interpreter.NewDataType("percent",
		isPercent,
		func(v value.Value) string {
			return v.String()
		},
		interpreter.Parser(parsePercent),
	)
}

func parsePercent(s string) (value.Value, bool) {
	num := strings.TrimSuffix(s, "%")
	if num == s {
		return value.Nil(), false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return value.Nil(), false
	}
	return value.Opaque(percent.FromInt(n)), true
}

func isPercent(v value.Value) bool {
	x, ok := v.AsOpaque()
	if !ok {
		return false
	}
	_, ok = x.(percent.Percent)
	return ok
}

// scale multiplies du by f, rounding to the nearest scaled point.
func scale(du dimen.DU, f float64) dimen.DU {
	return dimen.DU(math.Round(float64(du) * f))
}

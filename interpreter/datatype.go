package interpreter

import (
	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/pattern"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

// Literal recognizes the literal syntax of a data type. The evaluator is
// handed in for literals containing sub-expressions, e.g. array literals.
type Literal func(text string, ev pattern.Evaluator, ctx *scope.Context) maybe.Maybe[value.Value]

// Keyword creates a literal recognizing exactly text, producing v.
func Keyword(text string, v value.Value) Literal {
	return func(s string, _ pattern.Evaluator, _ *scope.Context) maybe.Maybe[value.Value] {
		if s == text {
			return maybe.Just(v)
		}
		return maybe.Nothing[value.Value]()
	}
}

// Parser creates a literal from a plain parsing function.
func Parser(parse func(string) (value.Value, bool)) Literal {
	return func(s string, _ pattern.Evaluator, _ *scope.Context) maybe.Maybe[value.Value] {
		v, ok := parse(s)
		return maybe.Of(v, ok)
	}
}

// DataType is a kind of value a grammar knows literals of and knows how to
// print.
type DataType struct {
	name     string
	accepts  func(value.Value) bool
	print    func(value.Value) string
	literals []Literal
}

// NewDataType creates a data type. accepts decides whether print is
// responsible for a value.
func NewDataType(name string, accepts func(value.Value) bool, print func(value.Value) string,
	literals ...Literal) *DataType {
	//
	return &DataType{
		name:     name,
		accepts:  accepts,
		print:    print,
		literals: literals,
	}
}

// OfKind returns an acceptance predicate for values of the given kind.
func OfKind(kind value.Kind) func(value.Value) bool {
	return func(v value.Value) bool {
		return v.Kind() == kind
	}
}

// Name returns the name of the data type.
func (dt *DataType) Name() string {
	return dt.name
}

// Parse tries the literals of dt in order.
func (dt *DataType) Parse(text string, ev pattern.Evaluator, ctx *scope.Context) maybe.Maybe[value.Value] {
	for _, lit := range dt.literals {
		if v := lit(text, ev, ctx); !v.IsNothing() {
			return v
		}
	}
	return maybe.Nothing[value.Value]()
}

// Print renders v, if dt is responsible for v.
func (dt *DataType) Print(v value.Value) (string, bool) {
	if dt.accepts == nil || !dt.accepts(v) {
		return "", false
	}
	return dt.print(v), true
}

// Function is a set of patterns sharing their output type, e.g. the
// patterns of an operator.
type Function struct {
	name     string
	patterns []*pattern.Pattern[value.Value]
}

// NewFunction creates a function. Its patterns are tried in order.
func NewFunction(name string, patterns ...*pattern.Pattern[value.Value]) *Function {
	return &Function{name: name, patterns: patterns}
}

// Name returns the name of the function.
func (f *Function) Name() string {
	return f.name
}

// Patterns returns the patterns of f.
func (f *Function) Patterns() []*pattern.Pattern[value.Value] {
	return f.patterns
}

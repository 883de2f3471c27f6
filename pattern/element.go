package pattern

import (
	"strings"

	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/scope"
	"github.com/tevelee/Eval-sub000/value"
)

// Element is a building block of a pattern, either a Keyword or a
// *Variable.
type Element interface {
	// Match tests the element against the remaining input.
	Match(prefix string) Verdict[string]
	isElement()
}

// --- Keywords --------------------------------------------------------------

// KeywordKind distinguishes plain keywords from the delimiters of nested
// structures.
type KeywordKind uint8

const (
	Generic KeywordKind = iota
	Opening
	Closing
)

// Keyword is a literal token of a pattern.
type Keyword struct {
	Text string
	Kind KeywordKind
}

// Kw creates a generic keyword. Surrounding whitespace of text is removed.
func Kw(text string) Keyword {
	return Keyword{Text: strings.TrimSpace(text), Kind: Generic}
}

// Open creates the opening keyword of a nested structure, e.g. "(".
func Open(text string) Keyword {
	return Keyword{Text: strings.TrimSpace(text), Kind: Opening}
}

// Close creates the closing keyword of a nested structure, e.g. ")".
func Close(text string) Keyword {
	return Keyword{Text: strings.TrimSpace(text), Kind: Closing}
}

// Match reports ExactMatch if prefix starts with the keyword's text,
// PossibleMatch if prefix is itself a (possibly empty) beginning of the
// keyword's text, and NoMatch otherwise.
func (k Keyword) Match(prefix string) Verdict[string] {
	if strings.HasPrefix(prefix, k.Text) {
		return Exact(len(k.Text), k.Text, nil)
	}
	if strings.HasPrefix(k.Text, prefix) {
		return Possible[string]()
	}
	return No[string]()
}

func (k Keyword) isElement() {}

func (k Keyword) String() string {
	switch k.Kind {
	case Opening:
		return "open(" + k.Text + ")"
	case Closing:
		return "close(" + k.Text + ")"
	}
	return "kw(" + k.Text + ")"
}

// reversed returns the keyword as seen by a backward match: text reversed,
// opening and closing swapped.
func (k Keyword) reversed() Keyword {
	r := Keyword{Text: reverse(k.Text), Kind: k.Kind}
	switch k.Kind {
	case Opening:
		r.Kind = Closing
	case Closing:
		r.Kind = Opening
	}
	return r
}

// --- Variables -------------------------------------------------------------

// Target selects the evaluator which interprets a captured text.
type Target uint8

const (
	AsExpression Target = iota // evaluate the capture as an expression
	AsTemplate                 // render the capture as a template
)

// Evaluator interprets captured text. Expression and template evaluators
// implement it.
type Evaluator interface {
	Interpret(text string, target Target, ctx *scope.Context) maybe.Maybe[value.Value]
}

// Mapper converts the (possibly interpreted) value of a capture. Returning
// Nothing rejects the capture.
type Mapper func(value.Value) maybe.Maybe[value.Value]

type greediness uint8

const (
	greedyDefault greediness = iota
	greedyYes
	greedyNo
)

// Variable is a named capture placeholder of a pattern.
type Variable struct {
	name        string
	greed       greediness
	interpreted bool
	nilAccepted bool
	trimmed     bool
	target      Target
	mapper      Mapper
}

// VarOption configures a variable.
type VarOption func(*Variable)

// Var creates a variable. By default a variable captures the shortest
// possible text (the rest of the input if it is the last element of its
// pattern), trims surrounding whitespace, interprets the capture as an
// expression and rejects captures which do not have a value.
func Var(name string, opts ...VarOption) *Variable {
	v := &Variable{
		name:        name,
		interpreted: true,
		trimmed:     true,
		target:      AsExpression,
		mapper:      Identity,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Greedy makes a variable capture the longest text for which the rest of
// the pattern still matches.
func Greedy() VarOption {
	return func(v *Variable) { v.greed = greedyYes }
}

// Shortest makes a variable capture the shortest text, even in the last
// position of a pattern.
func Shortest() VarOption {
	return func(v *Variable) { v.greed = greedyNo }
}

// NotInterpreted keeps the raw captured text as a string value.
func NotInterpreted() VarOption {
	return func(v *Variable) { v.interpreted = false }
}

// NotTrimmed keeps whitespace around the captured text.
func NotTrimmed() VarOption {
	return func(v *Variable) { v.trimmed = false }
}

// AcceptsNil lets a capture without a value match, binding value.Nil.
func AcceptsNil() VarOption {
	return func(v *Variable) { v.nilAccepted = true }
}

// Template interprets the capture as a template instead of an expression.
func Template() VarOption {
	return func(v *Variable) { v.target = AsTemplate }
}

// Map adds a mapper, applied after any mappers added before.
func Map(m Mapper) VarOption {
	return func(v *Variable) {
		prev := v.mapper
		v.mapper = func(x value.Value) maybe.Maybe[value.Value] {
			return maybe.AndThen[value.Value, value.Value](m, prev(x))
		}
	}
}

// Expect rejects captures whose value is not of one of the given kinds.
func Expect(kinds ...value.Kind) VarOption {
	return Map(func(x value.Value) maybe.Maybe[value.Value] {
		for _, k := range kinds {
			if x.Kind() == k {
				return maybe.Just(x)
			}
		}
		return maybe.Nothing[value.Value]()
	})
}

// Identity is the default mapper. It rejects Nil only.
func Identity(x value.Value) maybe.Maybe[value.Value] {
	if x.IsNil() {
		return maybe.Nothing[value.Value]()
	}
	return maybe.Just(x)
}

// Name returns the name of the variable.
func (v *Variable) Name() string {
	return v.name
}

// Match always reports AnyMatch.
func (v *Variable) Match(prefix string) Verdict[string] {
	return Any[string](v.greed == greedyYes)
}

func (v *Variable) isElement() {}

func (v *Variable) String() string {
	return "var(" + v.name + ")"
}

// convert interprets and maps a raw capture.
func (v *Variable) convert(raw string, env Env) (value.Value, bool) {
	if v.trimmed {
		raw = strings.TrimSpace(raw)
	}
	in := value.String(raw)
	if v.interpreted && env.Eval != nil {
		in = env.Eval.Interpret(raw, v.target, env.Ctx).WithDefault(value.Nil())
	}
	if out, ok := v.mapper(in).Get(); ok {
		return out, true
	}
	if v.nilAccepted {
		return value.Nil(), true
	}
	tracer().Debugf("variable %s rejects capture %q", v.name, raw)
	return value.Nil(), false
}

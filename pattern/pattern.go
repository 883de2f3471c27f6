package pattern

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tevelee/Eval-sub000/maybe"
	"github.com/tevelee/Eval-sub000/scope"
)

// ErrEmptyPattern is returned when creating a pattern without elements.
var ErrEmptyPattern = errors.New("pattern has no elements")

// ErrNoReducer is returned when creating a pattern without a reducer.
var ErrNoReducer = errors.New("pattern has no reducer")

// ErrAdjacentVariables is reported by Check for two variables not
// separated by a keyword. Their capture boundary is undefined.
var ErrAdjacentVariables = errors.New("adjacent variables without separating keyword")

// ErrEmptyKeyword is reported by Check for keywords with empty text.
var ErrEmptyKeyword = errors.New("keyword with empty text")

// Direction is the direction in which a pattern consumes its input.
type Direction uint8

// Patterns built with the Backward option have direction Reverse.
const (
	Forward Direction = iota
	Reverse
)

// Env is handed to every match. It carries the evaluator interpreting
// captures and the context of the evaluation.
type Env struct {
	Eval Evaluator
	Ctx  *scope.Context
}

// Reducer produces the output of a pattern from its captured variables.
// Returning Nothing turns a structural match into NoMatch.
type Reducer[T any] func(vars Vars, env Env) maybe.Maybe[T]

// Pattern is an immutable sequence of elements plus a reducer.
type Pattern[T any] struct {
	elements  []Element
	direction Direction
	name      string
	reduce    Reducer[T]
	scan      []Element // elements in scan order, keywords reversed for backward patterns
	openAt    int       // index into scan of the opening keyword, or -1
	closeAt   int       // index into scan of the closing keyword, or -1
}

type config struct {
	name      string
	direction Direction
}

// Option configures a pattern.
type Option func(*config)

// Name sets the name of a pattern, used for tracing and the debug trace of
// a context.
func Name(name string) Option {
	return func(c *config) { c.name = name }
}

// Backward makes a pattern match from the end of its input.
func Backward() Option {
	return func(c *config) { c.direction = Reverse }
}

// New creates a pattern.
func New[T any](elements []Element, reduce func(Vars, Env) maybe.Maybe[T], opts ...Option) (*Pattern[T], error) {
	if len(elements) == 0 {
		return nil, ErrEmptyPattern
	}
	if reduce == nil {
		return nil, ErrNoReducer
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Pattern[T]{
		elements:  append([]Element(nil), elements...),
		direction: cfg.direction,
		name:      cfg.name,
		reduce:    reduce,
		openAt:    -1,
		closeAt:   -1,
	}
	if p.name == "" {
		p.name = p.describe()
	}
	p.scan = make([]Element, len(elements))
	for i, e := range elements {
		j := i
		if p.direction == Reverse {
			j = len(elements) - 1 - i
			if k, ok := e.(Keyword); ok {
				e = k.reversed()
			}
		}
		p.scan[j] = e
	}
	for i, e := range p.scan {
		k, ok := e.(Keyword)
		if !ok {
			continue
		}
		if k.Kind == Opening && p.openAt < 0 {
			p.openAt = i
		} else if k.Kind == Closing && p.closeAt < 0 && p.openAt >= 0 {
			p.closeAt = i
		}
	}
	if p.closeAt < 0 {
		p.openAt = -1
	}
	return p, nil
}

// MustNew is like New, but panics on error. It is intended for grammar
// setup code.
func MustNew[T any](elements []Element, reduce func(Vars, Env) maybe.Maybe[T], opts ...Option) *Pattern[T] {
	p, err := New(elements, reduce, opts...)
	if err != nil {
		panic(fmt.Sprintf("cannot create pattern: %v", err))
	}
	return p
}

// Name returns the name of the pattern.
func (p *Pattern[T]) Name() string {
	return p.name
}

// Elements returns the elements of the pattern in declaration order.
func (p *Pattern[T]) Elements() []Element {
	return append([]Element(nil), p.elements...)
}

// Direction returns the direction of the pattern.
func (p *Pattern[T]) Direction() Direction {
	return p.direction
}

// Check verifies the construction contract of a pattern: no two variables
// may be adjacent, and keywords must not be empty. Matching does not call
// Check; grammars may call it once during setup.
func (p *Pattern[T]) Check() error {
	for i, e := range p.elements {
		switch el := e.(type) {
		case Keyword:
			if el.Text == "" {
				return fmt.Errorf("pattern %s, element %d: %w", p.name, i, ErrEmptyKeyword)
			}
		case *Variable:
			if i > 0 {
				if _, ok := p.elements[i-1].(*Variable); ok {
					return fmt.Errorf("pattern %s, element %d: %w", p.name, i, ErrAdjacentVariables)
				}
			}
		}
	}
	return nil
}

// Match matches the pattern against the beginning of input (the end of
// input for backward patterns). The whole of input is available to the
// pattern; callers probing partial input use Dispatch.
func (p *Pattern[T]) Match(input string, env Env) Verdict[T] {
	x := &executor[T]{p: p, env: env, subject: input}
	if p.direction == Reverse {
		x.subject = reverse(input)
	}
	v := x.run(state{vars: make(Vars)})
	tracer().Debugf("pattern %s on %q: %s", p.name, input, v)
	return v
}

// greedy is true if the variable at scan position i captures the longest
// possible text.
func (p *Pattern[T]) greedy(i int, v *Variable) bool {
	switch v.greed {
	case greedyYes:
		return true
	case greedyNo:
		return false
	}
	return i == len(p.scan)-1
}

func (p *Pattern[T]) describe() string {
	parts := make([]string, len(p.elements))
	for i, e := range p.elements {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, " ")
}

func reverse(s string) string {
	r := make([]byte, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeLastRuneInString(s)
		r = append(r, s[len(s)-size:]...)
		s = s[:len(s)-size]
	}
	return string(r)
}

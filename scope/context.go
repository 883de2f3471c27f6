package scope

import (
	"errors"
	"fmt"
	"sort"

	"github.com/edwingeng/deque"
	"github.com/tevelee/Eval-sub000/value"
	tp "github.com/xlab/treeprint"
	"gopkg.in/yaml.v3"
)

// ErrNoScope is returned by Pop if there is no pushed scope to restore.
var ErrNoScope = errors.New("no pushed scope to pop")

// Trace is a record of a successful pattern match.
type Trace struct {
	Pattern string                 // name of the matching pattern
	Vars    map[string]value.Value // captured variables
	Output  string                 // rendered output of the pattern
}

// Context is a mutable scope of named values.
type Context struct {
	Variables map[string]value.Value
	Debug     map[string]Trace // matched input → trace
	frames    deque.Deque      // saved variable sets, see Push/Pop
}

// New creates a context holding a copy of vars.
func New(vars map[string]value.Value) *Context {
	c := &Context{
		Variables: make(map[string]value.Value, len(vars)),
		Debug:     make(map[string]Trace),
		frames:    deque.NewDeque(),
	}
	for k, v := range vars {
		c.Variables[k] = v
	}
	return c
}

// FromGo creates a context from plain Go values, converting them with
// value.Of.
func FromGo(vars map[string]interface{}) *Context {
	c := New(nil)
	for k, v := range vars {
		c.Variables[k] = value.Of(v)
	}
	return c
}

// FromYAML creates a context from a YAML mapping of variable names to
// values.
func FromYAML(data []byte) (*Context, error) {
	var vars map[string]interface{}
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("cannot read context variables: %w", err)
	}
	tracer().Debugf("loaded %d context variables from YAML", len(vars))
	return FromGo(vars), nil
}

// Get returns the value of a variable.
func (c *Context) Get(name string) (value.Value, bool) {
	if c == nil {
		return value.Nil(), false
	}
	v, ok := c.Variables[name]
	return v, ok
}

// Set binds name to v, overwriting any previous binding.
func (c *Context) Set(name string, v value.Value) {
	if c.Variables == nil {
		c.Variables = make(map[string]value.Value)
	}
	c.Variables[name] = v
}

// Delete removes a binding.
func (c *Context) Delete(name string) {
	delete(c.Variables, name)
}

// Push saves the current set of variables. Bindings made until the
// matching Pop are discarded by the Pop.
func (c *Context) Push() {
	saved := make(map[string]value.Value, len(c.Variables))
	for k, v := range c.Variables {
		saved[k] = v
	}
	if c.frames == nil {
		c.frames = deque.NewDeque()
	}
	c.frames.PushBack(saved)
}

// Pop restores the set of variables saved by the latest Push.
func (c *Context) Pop() error {
	if c.frames == nil || c.frames.Empty() {
		return ErrNoScope
	}
	c.Variables = c.frames.PopBack().(map[string]value.Value)
	return nil
}

// Depth returns the number of pushed scopes.
func (c *Context) Depth() int {
	if c.frames == nil {
		return 0
	}
	return c.frames.Len()
}

// Merge creates a new context with the variables and trace of parent,
// overridden by the ones of child. Either argument may be nil.
func Merge(parent, child *Context) *Context {
	m := New(nil)
	for _, c := range []*Context{parent, child} {
		if c == nil {
			continue
		}
		for k, v := range c.Variables {
			m.Variables[k] = v
		}
		for k, t := range c.Debug {
			m.Debug[k] = t
		}
	}
	return m
}

// Inherit copies every variable of parent which is not bound in c into c.
// Bindings of c take precedence. Contrary to Merge, c is modified in place,
// thus holders of c will see the inherited variables.
func (c *Context) Inherit(parent *Context) {
	if parent == nil || parent == c {
		return
	}
	if c.Variables == nil {
		c.Variables = make(map[string]value.Value, len(parent.Variables))
	}
	for k, v := range parent.Variables {
		if _, exists := c.Variables[k]; !exists {
			c.Variables[k] = v
		}
	}
}

// Record adds a trace entry for a successful match of input.
func (c *Context) Record(input string, t Trace) {
	if c == nil {
		return
	}
	if c.Debug == nil {
		c.Debug = make(map[string]Trace)
	}
	c.Debug[input] = t
}

// DebugTree renders the recorded match trace as a tree, sorted by the
// matched input.
func (c *Context) DebugTree() string {
	printer := tp.New()
	inputs := make([]string, 0, len(c.Debug))
	for in := range c.Debug {
		inputs = append(inputs, in)
	}
	sort.Strings(inputs)
	for _, in := range inputs {
		t := c.Debug[in]
		branch := printer.AddMetaBranch(t.Pattern, fmt.Sprintf("%q", in))
		names := make([]string, 0, len(t.Vars))
		for name := range t.Vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			branch.AddNode(name + " = " + t.Vars[name].String())
		}
		branch.AddMetaNode("output", fmt.Sprintf("%q", t.Output))
	}
	return printer.String()
}

package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	NilKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	SeqKind
	MapKind
	DateKind
	OpaqueKind
)

var kindNames = [...]string{"nil", "number", "string", "bool", "sequence", "map", "date", "opaque"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a tagged union of the values an evaluation may produce or
// capture.
/*
type Value
	= Nil
	| Number float64
	| String string
	| Bool bool
	| Seq (List Value)
	| Map (Dict String Value)
	| Date Time
	| Opaque any
*/
// The zero Value is Nil. Values are immutable; sequences and maps must
// not be modified after construction.
type Value struct {
	kind Kind
	n    float64
	s    string
	b    bool
	seq  []Value
	m    map[string]Value
	t    time.Time
	x    interface{}
}

// Nil returns the absent value.
func Nil() Value {
	return Value{}
}

func Number(n float64) Value {
	return Value{kind: NumberKind, n: n}
}

func String(s string) Value {
	return Value{kind: StringKind, s: s}
}

func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// Seq creates a sequence value holding items.
func Seq(items ...Value) Value {
	return Value{kind: SeqKind, seq: items}
}

// Map creates a map value. m is not copied.
func Map(m map[string]Value) Value {
	return Value{kind: MapKind, m: m}
}

func Date(t time.Time) Value {
	return Value{kind: DateKind, t: t}
}

// Opaque wraps a value of a type the variant does not know about, e.g.
// a typesetting dimension. Grammars recognize it by type assertion.
func Opaque(x interface{}) Value {
	if x == nil {
		return Nil()
	}
	return Value{kind: OpaqueKind, x: x}
}

// Kind returns the variant tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool {
	return v.kind == NilKind
}

// Len returns the number of items for sequences and maps, the number of
// runes for strings, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case SeqKind:
		return len(v.seq)
	case MapKind:
		return len(v.m)
	case StringKind:
		return len([]rune(v.s))
	}
	return 0
}

// Items returns the items of a sequence, or nil.
func (v Value) Items() []Value {
	if v.kind != SeqKind {
		return nil
	}
	return v.seq
}

// Lookup returns the entry for key, if v is a map.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != MapKind {
		return Nil(), false
	}
	x, ok := v.m[key]
	return x, ok
}

// Keys returns the sorted keys of a map value.
func (v Value) Keys() []string {
	if v.kind != MapKind {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two values structurally. Opaque values are compared with ==
// and must therefore hold comparable types.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case NilKind:
		return true
	case NumberKind:
		return v.n == w.n
	case StringKind:
		return v.s == w.s
	case BoolKind:
		return v.b == w.b
	case DateKind:
		return v.t.Equal(w.t)
	case SeqKind:
		if len(v.seq) != len(w.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(w.seq[i]) {
				return false
			}
		}
		return true
	case MapKind:
		if len(v.m) != len(w.m) {
			return false
		}
		for k, x := range v.m {
			if y, ok := w.m[k]; !ok || !x.Equal(y) {
				return false
			}
		}
		return true
	}
	return v.x == w.x
}

// String renders v for debugging. Grammars register their own printers
// for user-visible output.
func (v Value) String() string {
	switch v.kind {
	case NilKind:
		return "nil"
	case NumberKind:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case StringKind:
		return strconv.Quote(v.s)
	case BoolKind:
		return strconv.FormatBool(v.b)
	case DateKind:
		return v.t.Format(time.RFC3339)
	case SeqKind:
		parts := make([]string, len(v.seq))
		for i, x := range v.seq {
			parts[i] = x.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case MapKind:
		keys := v.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.m[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("%v", v.x)
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for destructuring v in a switch statement:
//
//    var n float64
//    switch m := v.Match(); m {
//    case m.Number(&n):
//        ...
//    case m.String(&s):
//        ...
//    }
func (v Value) Match() *Matcher {
	return &Matcher{v: v}
}

// Matcher extracts the payload of a Value if it has the requested variant.
// Every method returns nil on a mismatch.
type Matcher struct {
	v Value
}

func (m *Matcher) Nil() *Matcher {
	if m.v.kind == NilKind {
		return m
	}
	return nil
}

func (m *Matcher) Number(n *float64) *Matcher {
	if m.v.kind == NumberKind {
		if n != nil {
			*n = m.v.n
		}
		return m
	}
	return nil
}

func (m *Matcher) String(s *string) *Matcher {
	if m.v.kind == StringKind {
		if s != nil {
			*s = m.v.s
		}
		return m
	}
	return nil
}

func (m *Matcher) Bool(b *bool) *Matcher {
	if m.v.kind == BoolKind {
		if b != nil {
			*b = m.v.b
		}
		return m
	}
	return nil
}

func (m *Matcher) Seq(items *[]Value) *Matcher {
	if m.v.kind == SeqKind {
		if items != nil {
			*items = m.v.seq
		}
		return m
	}
	return nil
}

func (m *Matcher) Map(entries *map[string]Value) *Matcher {
	if m.v.kind == MapKind {
		if entries != nil {
			*entries = m.v.m
		}
		return m
	}
	return nil
}

func (m *Matcher) Date(t *time.Time) *Matcher {
	if m.v.kind == DateKind {
		if t != nil {
			*t = m.v.t
		}
		return m
	}
	return nil
}

func (m *Matcher) Opaque(x *interface{}) *Matcher {
	if m.v.kind == OpaqueKind {
		if x != nil {
			*x = m.v.x
		}
		return m
	}
	return nil
}

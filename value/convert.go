package value

import (
	"fmt"
	"time"
)

// Of converts a plain Go value into a Value. Integers and floats become
// numbers, slices and string-keyed maps are converted recursively, values
// of unknown type are wrapped as opaque.
func Of(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Nil()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case time.Time:
		return Date(t)
	case []Value:
		return Seq(t...)
	case []interface{}:
		items := make([]Value, len(t))
		for i, y := range t {
			items[i] = Of(y)
		}
		return Seq(items...)
	case []string:
		items := make([]Value, len(t))
		for i, y := range t {
			items[i] = String(y)
		}
		return Seq(items...)
	case []float64:
		items := make([]Value, len(t))
		for i, y := range t {
			items[i] = Number(y)
		}
		return Seq(items...)
	case []int:
		items := make([]Value, len(t))
		for i, y := range t {
			items[i] = Number(float64(y))
		}
		return Seq(items...)
	case map[string]Value:
		return Map(t)
	case map[string]interface{}:
		m := make(map[string]Value, len(t))
		for k, y := range t {
			m[k] = Of(y)
		}
		return Map(m)
	case map[interface{}]interface{}:
		m := make(map[string]Value, len(t))
		for k, y := range t {
			m[fmt.Sprint(k)] = Of(y)
		}
		return Map(m)
	}
	return Opaque(x)
}

// Go returns the payload of v as a plain Go value, the inverse of Of for
// the known variants.
func (v Value) Go() interface{} {
	switch v.kind {
	case NilKind:
		return nil
	case NumberKind:
		return v.n
	case StringKind:
		return v.s
	case BoolKind:
		return v.b
	case DateKind:
		return v.t
	case SeqKind:
		items := make([]interface{}, len(v.seq))
		for i, x := range v.seq {
			items[i] = x.Go()
		}
		return items
	case MapKind:
		m := make(map[string]interface{}, len(v.m))
		for k, x := range v.m {
			m[k] = x.Go()
		}
		return m
	}
	return v.x
}

// AsNumber returns the payload of a number value.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == NumberKind
}

// AsString returns the payload of a string value.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

// AsBool returns the payload of a boolean value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// AsDate returns the payload of a date value.
func (v Value) AsDate() (time.Time, bool) {
	return v.t, v.kind == DateKind
}

// AsOpaque returns the payload of an opaque value.
func (v Value) AsOpaque() (interface{}, bool) {
	return v.x, v.kind == OpaqueKind
}

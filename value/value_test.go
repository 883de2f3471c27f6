package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueMatch(t *testing.T) {
	v := Number(3.5)
	var n float64
	var s string
	switch m := v.Match(); m {
	case m.String(&s):
		t.Errorf("expected number to not match as string, got %q", s)
	case m.Number(&n):
		t.Logf("n = %g", n)
	default:
		t.Errorf("expected Number(3.5) to match as number, didn't: %v", v)
	}
	assert.Equal(t, 3.5, n)

	var zero Value
	switch m := zero.Match(); m {
	case m.Nil():
	default:
		t.Error("expected zero value to be nil")
	}
}

func TestValueEqual(t *testing.T) {
	a := Seq(Number(1), String("x"), Map(map[string]Value{"k": Bool(true)}))
	b := Seq(Number(1), String("x"), Map(map[string]Value{"k": Bool(true)}))
	c := Seq(Number(1), String("y"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, Number(1).Equal(String("1")))
	d := time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, Date(d).Equal(Date(d.In(time.Local))))
}

func TestValueOf(t *testing.T) {
	v := Of(map[string]interface{}{
		"name":  "Eval",
		"count": 3,
		"tags":  []interface{}{"a", true},
	})
	assert.Equal(t, MapKind, v.Kind())
	name, _ := v.Lookup("name")
	assert.Equal(t, String("Eval"), name)
	count, _ := v.Lookup("count")
	n, ok := count.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
	tags, _ := v.Lookup("tags")
	assert.Equal(t, 2, tags.Len())
	assert.Equal(t, []string{"count", "name", "tags"}, v.Keys())
	assert.Equal(t, OpaqueKind, Of(struct{ X int }{1}).Kind())
	assert.True(t, Of(nil).IsNil())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, `[1, "a", true]`, Seq(Number(1), String("a"), Bool(true)).String())
	assert.Equal(t, `{a: 1, b: nil}`, Map(map[string]Value{"b": Nil(), "a": Number(1)}).String())
	assert.Equal(t, "number", NumberKind.String())
	assert.Equal(t, 5, String("héllo").Len())
}

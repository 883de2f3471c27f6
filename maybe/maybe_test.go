package maybe_test

import (
	"testing"

	. "github.com/tevelee/Eval-sub000/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7).Map(func(n int) int {
		return n * 2
	})
	if v, ok := x.Get(); !ok || v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	var isGreater bool
	switch m := AndThen(gt0, Just(7)).Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeOneOf(t *testing.T) {
	calls := 0
	first := func() Maybe[string] { calls++; return Nothing[string]() }
	second := func() Maybe[string] { calls++; return Just("b") }
	third := func() Maybe[string] { calls++; return Just("c") }
	r := OneOf(first, second, third)
	if v, _ := r.Get(); v != "b" {
		t.Errorf("expected OneOf to pick \"b\", picked %q", v)
	}
	if calls != 2 {
		t.Errorf("expected OneOf to stop after first hit, made %d calls", calls)
	}
	if !Of(1, false).IsNothing() {
		t.Error("expected Of(1, false) to be Nothing")
	}
}

func TestMaybeUncomparable(t *testing.T) {
	x := Just([]int{1, 2})
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just([1 2]) to match Just, didn't")
	}
	if len(v) != 2 {
		t.Errorf("expected v to be [1 2], is %v", v)
	}
	var w map[string]int
	switch m := Nothing[map[string]int]().Match(); m {
	case m.Just(&w):
		t.Error("expected Nothing not to match Just, did")
	case m.Nothing():
	}
	n := AndThen(func(xs []int) Maybe[[]int] {
		return Just(append(xs, 3))
	}, x)
	if xs, ok := n.Get(); !ok || len(xs) != 3 {
		t.Errorf("expected AndThen to append to [1 2], is %v", xs)
	}
}

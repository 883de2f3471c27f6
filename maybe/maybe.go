/*
Package maybe implements an option type, modelled after Elm's Maybe.

A Maybe is the answer of every evaluation step which may legitimately
produce nothing: a literal parser which does not recognize its input, a
variable mapper rejecting a capture, an expression without a value. Absence
is not an error, it is just Nothing.

    x := maybe.Just(7)
    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        ...
    case m.Nothing():
        ...
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok, Nothing otherwise. It adapts Go's
// comma-ok idiom.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Match returns a matcher which compares by identity, so T need not be
// comparable.
func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// OneOf returns the first Just produced by one of the candidate functions,
// trying them in order. Candidates after the first hit are not called.
func OneOf[T any](candidates ...func() Maybe[T]) Maybe[T] {
	for _, c := range candidates {
		if r := c(); !r.IsNothing() {
			return r
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

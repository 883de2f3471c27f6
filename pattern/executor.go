package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// executor matches a single pattern against a subject. Backward patterns
// are matched as forward patterns against the reversed subject, using the
// reversed keywords of Pattern.scan.
type executor[T any] struct {
	p       *Pattern[T]
	env     Env
	subject string
}

// capture is the variable currently absorbing input. The captured text is
// subject[start:pos].
type capture struct {
	v     *Variable
	start int
}

// state is the cursor of a match attempt. It is copied when a greedy
// variable tries alternative capture lengths.
type state struct {
	i      int      // current element of Pattern.scan
	pos    int      // current position in subject
	vars   Vars     // finalized captures
	active *capture // at most one active capture
	opened bool     // the opening keyword has matched, nesting is tracked
	depth  int      // nesting depth of absorbed opening/closing keywords
}

func (x *executor[T]) run(st state) Verdict[T] {
	scan := x.p.scan
	for st.i < len(scan) {
		switch el := scan[st.i].(type) {
		case Keyword:
			v := el.Match(x.subject[st.pos:])
			switch v.Kind {
			case NoMatch:
				if !x.absorb(&st) {
					return No[T]()
				}
			case PossibleMatch:
				return Possible[T]()
			case ExactMatch:
				if st.depth > 0 {
					// keyword belongs to a nested structure
					if !x.absorb(&st) {
						return No[T]()
					}
					continue
				}
				if !x.finalize(&st) {
					return No[T]()
				}
				for k, val := range v.Vars {
					st.vars[k] = val
				}
				st.pos += v.Length
				switch st.i {
				case x.p.openAt:
					st.opened = true
				case x.p.closeAt:
					st.opened = false
				}
				st.i++
				if st.i < len(scan) {
					if _, ok := scan[st.i].(Keyword); ok {
						st.pos = x.skipSpace(st.pos)
					}
				}
			}
		case *Variable:
			st.active = &capture{v: el, start: st.pos}
			x.absorb(&st)
			if !x.p.greedy(st.i, el) {
				st.i++
				continue
			}
			if st.i < len(scan)-1 {
				return x.longest(st)
			}
			for x.absorb(&st) {
			}
			if !x.finalize(&st) {
				return No[T]()
			}
			st.i++
		}
	}
	if !x.finalize(&st) { // trailing variable marked Shortest
		return No[T]()
	}
	out, ok := x.p.reduce(st.vars, x.env).Get()
	if !ok {
		tracer().Debugf("pattern %s: reducer rejects %v", x.p.name, st.vars)
		return No[T]()
	}
	return Exact(st.pos, out, st.vars)
}

// absorb appends the next character of the subject to the active capture.
// It reports false if there is no active capture or no input left.
func (x *executor[T]) absorb(st *state) bool {
	if st.active == nil || st.pos >= len(x.subject) {
		return false
	}
	if st.opened {
		rest := x.subject[st.pos:]
		if st.depth > 0 && strings.HasPrefix(rest, x.p.scan[x.p.closeAt].(Keyword).Text) {
			st.depth--
		} else if strings.HasPrefix(rest, x.p.scan[x.p.openAt].(Keyword).Text) {
			st.depth++
		}
	}
	_, size := utf8.DecodeRuneInString(x.subject[st.pos:])
	st.pos += size
	return true
}

// finalize converts the active capture, if any, and binds it. It reports
// false if the variable rejects the capture.
func (x *executor[T]) finalize(st *state) bool {
	if st.active == nil {
		return true
	}
	c := st.active
	st.active = nil
	raw := x.subject[c.start:st.pos]
	if x.p.direction == Reverse {
		raw = reverse(raw)
	}
	val, ok := c.v.convert(raw, x.env)
	if !ok {
		return false
	}
	st.vars[c.v.name] = val
	return true
}

// longest lets a greedy variable, which is not the last element, capture
// the longest text for which the rest of the pattern matches. Candidate
// ends are the positions where the following keyword matches, tried from
// the end of the subject backwards.
func (x *executor[T]) longest(st state) Verdict[T] {
	next, ok := x.p.scan[st.i+1].(Keyword)
	if !ok { // adjacent variables, boundary undefined
		st.i++
		return x.run(st)
	}
	possible := false
	for end := len(x.subject); ; {
		switch next.Match(x.subject[end:]).Kind {
		case PossibleMatch:
			possible = true
		case ExactMatch:
			cand := st
			cand.vars = st.vars.clone()
			for cand.pos < end {
				x.absorb(&cand)
			}
			cand.i++
			v := x.run(cand)
			if v.Kind == ExactMatch {
				return v
			}
			possible = possible || v.Kind == PossibleMatch
		}
		if end <= st.pos {
			break
		}
		_, size := utf8.DecodeLastRuneInString(x.subject[:end])
		end -= size
	}
	if possible {
		return Possible[T]()
	}
	return No[T]()
}

func (x *executor[T]) skipSpace(pos int) int {
	for pos < len(x.subject) {
		r, size := utf8.DecodeRuneInString(x.subject[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

package fluent

import (
	"github.com/ib-77/pmatch/pkg/pmatch"
)

// Matcher accumulates cases against one Result and collapses to a final
// value. It is value-like: each step returns an updated Matcher, and the
// first accepting case freezes the outcome.
type Matcher[T, E, R any] struct {
	res     pmatch.Result[T, E]
	matched bool
	out     R
}

// On starts a matcher over r. R is named first so call sites can write
// fluent.On[string](res) and let T and E follow from the result.
func On[R, T, E any](r pmatch.Result[T, E]) Matcher[T, E, R] {
	return Matcher[T, E, R]{res: r}
}

// Ok tests pattern against the success payload when the result is Ok and
// no earlier case has accepted.
func (m Matcher[T, E, R]) Ok(pattern any, handle func(T) R) Matcher[T, E, R] {
	if m.matched || !m.res.IsOk() {
		return m
	}
	if pmatch.Matches(m.res.Value(), pattern) {
		m.matched = true
		m.out = handle(m.res.Value())
	}
	return m
}

// Err tests pattern against the failure payload when the result is Err and
// no earlier case has accepted.
func (m Matcher[T, E, R]) Err(pattern any, handle func(E) R) Matcher[T, E, R] {
	if m.matched || !m.res.IsErr() {
		return m
	}
	if pmatch.Matches(m.res.Err(), pattern) {
		m.matched = true
		m.out = handle(m.res.Err())
	}
	return m
}

// Else supplies a tag-independent fallback; it accepts whenever nothing
// before it has.
func (m Matcher[T, E, R]) Else(handle func(pmatch.Result[T, E]) R) Matcher[T, E, R] {
	if m.matched {
		return m
	}
	m.matched = true
	m.out = handle(m.res)
	return m
}

// Finally collapses the matcher. An unmatched result is the same hard
// failure Match reports: pmatch.ErrNonExhaustiveMatch.
func (m Matcher[T, E, R]) Finally() (R, error) {
	if m.matched {
		return m.out, nil
	}
	return pmatch.Match[T, E, R](m.res)
}

// MustFinally collapses the matcher, panicking when no case accepted.
func (m Matcher[T, E, R]) MustFinally() R {
	out, err := m.Finally()
	if err != nil {
		panic(err)
	}
	return out
}

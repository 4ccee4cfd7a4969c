package pmatch

import (
	"errors"
	"fmt"
)

// ErrNonExhaustiveMatch is returned when no case accepted the result. A
// trailing CaseOk(Any, ...) plus CaseErr(Any, ...) always avoids it.
var ErrNonExhaustiveMatch = errors.New("non-exhaustive match: no case accepted the result")

type variant uint8

const (
	okVariant variant = iota
	errVariant
)

// MatchCase pairs a Result variant with a pattern over that variant's
// payload and a handler invoked on the first accepting case.
type MatchCase[T, E, R any] struct {
	variant variant
	pattern any
	onOk    func(T) R
	onErr   func(E) R
}

func CaseOk[T, E, R any](pattern any, handle func(T) R) MatchCase[T, E, R] {
	return MatchCase[T, E, R]{variant: okVariant, pattern: pattern, onOk: handle}
}

func CaseErr[T, E, R any](pattern any, handle func(E) R) MatchCase[T, E, R] {
	return MatchCase[T, E, R]{variant: errVariant, pattern: pattern, onErr: handle}
}

// Match tries cases strictly in order against r. A case is tested only when
// its variant equals r's tag; the first case whose pattern accepts the
// payload has its handler invoked and its value returned, and no further
// case is examined. Exhausting the list is a hard failure wrapping
// ErrNonExhaustiveMatch, never a silent zero value.
func Match[T, E, R any](r Result[T, E], cases ...MatchCase[T, E, R]) (R, error) {
	for _, c := range cases {
		if c.variant == okVariant && r.IsOk() && Matches(r.Value(), c.pattern) {
			return c.onOk(r.Value()), nil
		}
		if c.variant == errVariant && r.IsErr() && Matches(r.Err(), c.pattern) {
			return c.onErr(r.Err()), nil
		}
	}

	var zero R
	return zero, fmt.Errorf("%w (result %s)", ErrNonExhaustiveMatch, r.Id())
}

// MustMatch is Match for case lists the caller asserts are exhaustive;
// it panics on a miss.
func MustMatch[T, E, R any](r Result[T, E], cases ...MatchCase[T, E, R]) R {
	out, err := Match(r, cases...)
	if err != nil {
		panic(err)
	}
	return out
}

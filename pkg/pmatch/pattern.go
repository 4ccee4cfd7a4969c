package pmatch

// Predicate is the function-pattern form the matcher invokes directly.
// When and Guard produce Predicates; an ad-hoc func(any) bool works too.
type Predicate func(v any) bool

// anyPattern is the wildcard sentinel type. It is recognized by type, never
// by equality, so it cannot collide with a legitimate literal pattern value.
type anyPattern struct{}

// Any matches every value unconditionally, including nil.
var Any = anyPattern{}

// When wraps a typed predicate as a function pattern. A value that is not a
// T is a non-match; the predicate is only ever invoked with a T. A nil value
// is handed through when the predicate accepts any.
func When[T any](predicate func(T) bool) Predicate {
	return func(v any) bool {
		t, ok := v.(T)
		if !ok {
			if v == nil {
				if loose, isAny := any(predicate).(func(any) bool); isAny {
					return loose(nil)
				}
			}
			return false
		}
		return predicate(t)
	}
}

// Guard is When under a name that announces type-narrowing intent at the
// call site. It shares When's code path; there is no runtime difference.
func Guard[T any](predicate func(T) bool) Predicate {
	return When(predicate)
}

type quantifier uint8

const (
	someOf quantifier = iota
	everyOf
)

// manyPattern quantifies one sub-pattern over every element of an array
// value. It is a distinct type so classification is a type assertion, never
// a reserved-field probe; object patterns keep their full key space.
type manyPattern struct {
	q   quantifier
	sub any
}

// Some matches an array value when at least one element matches sub.
// An empty array never matches.
func Some(sub any) any {
	return manyPattern{q: someOf, sub: sub}
}

// Every matches an array value when all elements match sub.
// An empty array matches vacuously.
func Every(sub any) any {
	return manyPattern{q: everyOf, sub: sub}
}

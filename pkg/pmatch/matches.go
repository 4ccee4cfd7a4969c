package pmatch

import (
	"reflect"
	"regexp"
)

// Matches reports whether value satisfies pattern. It is pure and never
// panics for any value/pattern shape; a predicate that panics on its own
// propagates unchanged.
//
// Classification precedence, first hit wins:
//  1. the Any sentinel matches everything
//  2. a function pattern (Predicate, func(any) bool, or any one-argument
//     boolean func) matches iff it returns true for value
//  3. a *regexp.Regexp matches a string value iff it tests true; against a
//     non-string it falls through to equality and fails
//  4. a slice/array pattern matches a slice/array value of equal length
//     whose every position matches the nested pattern, in order
//  5. a string-keyed map pattern partially matches a map/struct value: each
//     pattern key must match the field of that name, absent fields match
//     their sub-pattern against nil, unlisted keys constrain nothing; map
//     keys are visited in unspecified order
//  6. Some/Every quantify a sub-pattern over a slice/array value
//  7. otherwise value must be deeply equal to pattern, same type included
func Matches(value, pattern any) bool {
	switch p := pattern.(type) {
	case anyPattern:
		return true
	case Predicate:
		if p == nil {
			return false
		}
		return p(value)
	case func(any) bool:
		if p == nil {
			return false
		}
		return p(value)
	case *regexp.Regexp:
		if s, ok := value.(string); ok && p != nil {
			return p.MatchString(s)
		}
		return literalEqual(value, pattern)
	case manyPattern:
		return matchMany(value, p)
	}

	switch pv := reflect.ValueOf(pattern); pv.Kind() {
	case reflect.Func:
		return callFunctionPattern(pv, value)
	case reflect.Slice, reflect.Array:
		return matchSequence(value, pv)
	case reflect.Map:
		if op, ok := asObjectPattern(pattern); ok {
			return matchObject(value, op)
		}
	}

	return literalEqual(value, pattern)
}

func matchSequence(value any, pattern reflect.Value) bool {
	seq, ok := asSequence(value)
	if !ok {
		return literalEqual(value, pattern.Interface())
	}
	if seq.Len() != pattern.Len() {
		return false
	}
	for i := 0; i < pattern.Len(); i++ {
		if !Matches(seq.Index(i).Interface(), pattern.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func matchObject(value any, pattern reflect.Value) bool {
	if !isObjectValue(value) {
		return literalEqual(value, pattern.Interface())
	}
	iter := pattern.MapRange()
	for iter.Next() {
		if !Matches(fieldOf(value, iter.Key().String()), iter.Value().Interface()) {
			return false
		}
	}
	return true
}

func matchMany(value any, p manyPattern) bool {
	seq, ok := asSequence(value)
	if !ok {
		return literalEqual(value, p)
	}
	for i := 0; i < seq.Len(); i++ {
		hit := Matches(seq.Index(i).Interface(), p.sub)
		if p.q == someOf && hit {
			return true
		}
		if p.q == everyOf && !hit {
			return false
		}
	}
	return p.q == everyOf
}

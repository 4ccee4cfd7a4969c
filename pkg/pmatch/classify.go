package pmatch

import (
	"reflect"
)

func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch rv := reflect.ValueOf(i); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// asSequence classifies value as an array pattern target. Strings are not
// sequences in this vocabulary.
func asSequence(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// asObjectPattern classifies pattern as a partial object pattern: a map
// keyed by strings, each entry a sub-pattern for the field of that name.
func asObjectPattern(pattern any) (reflect.Value, bool) {
	rv := reflect.ValueOf(pattern)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	return rv, true
}

// isObjectValue reports whether value is a non-nil map, struct, or pointer
// to struct, i.e. something a partial object pattern can descend into.
func isObjectValue(value any) bool {
	if IsNil(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Map || rv.Kind() == reflect.Struct
}

// fieldOf resolves value's field of the given name: a map entry for maps,
// an exported field for structs (through pointers). Absent or unreadable
// fields resolve to nil, the stand-in for a missing value.
func fieldOf(value any, key string) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	default:
		return nil
	}
}

// callFunctionPattern invokes an ad-hoc one-argument boolean function
// pattern. Anything else shaped like a func is not a match, and a value
// the function cannot accept is a non-match rather than a panic.
func callFunctionPattern(fn reflect.Value, value any) bool {
	if fn.IsNil() {
		return false
	}
	t := fn.Type()
	if t.NumIn() != 1 || t.IsVariadic() || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return false
	}

	in := t.In(0)
	var arg reflect.Value
	if value == nil {
		switch in.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			arg = reflect.Zero(in)
		default:
			return false
		}
	} else {
		arg = reflect.ValueOf(value)
		if !arg.Type().AssignableTo(in) {
			return false
		}
	}

	return fn.Call([]reflect.Value{arg})[0].Bool()
}

// literalEqual is the terminal rule: nil-safe typed deep equality.
func literalEqual(value, pattern any) bool {
	return reflect.DeepEqual(value, pattern)
}

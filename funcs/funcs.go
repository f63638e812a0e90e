// SPDX-License-Identifier: Apache-2.0

// Package funcs provides small reflection-based adapters that turn an
// arbitrary-signature func into the one canonical shape a caller actually
// needs, plus a handful of comparison helpers used by the transducer and
// stream packages (dedupe equality, replace lookups, sort ordering).
//
// Every adapter checks the input func's shape exactly once, at construction
// time. A func already of the canonical shape is returned as is; any other
// func is wrapped in a closure that converts the arguments and calls it
// through reflect on each invocation.
package funcs

import (
	"fmt"
	"reflect"
)

const (
	indexOfErrorMsg    = "slc must be a slice or array"
	valueOfKeyErrorMsg = "mp must be a map"
	mapErrorMsg        = "fn must be a non-nil function of one argument of any type that returns one value of any type"
	filterErrorMsg     = "fn must be a non-nil function of one argument of any type that returns bool"
	lessThanErrorMsg   = "val must be a lessable type"
)

// IndexOf returns the first of the following given an array or slice and an index:
// 1. slc[index] if the array or slice length > index
// 2. the zero value of the array or slice element type, otherwise
// Panics if slc is not an array or slice.
func IndexOf(slc interface{}, index int) (interface{}, bool) {
	rv := reflect.ValueOf(slc)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
	default:
		panic(indexOfErrorMsg)
	}

	if index < 0 || index >= rv.Len() {
		return reflect.Zero(rv.Type().Elem()).Interface(), false
	}

	return rv.Index(index).Interface(), true
}

// ValueOfKey returns mp[key] and whether the key was present.
// Panics if mp is not a map.
func ValueOfKey(mp interface{}, key interface{}) (interface{}, bool) {
	rv := reflect.ValueOf(mp)
	if rv.Kind() != reflect.Map {
		panic(valueOfKeyErrorMsg)
	}

	for mr := rv.MapRange(); mr.Next(); {
		if mr.Key().Interface() == key {
			return mr.Value().Interface(), true
		}
	}

	return reflect.Zero(rv.Type().Elem()).Interface(), false
}

// Map adapts a func(any) any into a func(interface{}) interface{}.
// If fn happens to already be a func(interface{}) interface{}, it is returned as is.
// Otherwise, each invocation converts the arg passed to the type the func receives.
// Panics if fn is not a non-nil function of one argument and one result.
func Map(fn interface{}) func(interface{}) interface{} {
	if res, isa := fn.(func(interface{}) interface{}); isa {
		return res
	}

	vfn := reflect.ValueOf(fn)
	if (vfn.Kind() != reflect.Func) || vfn.IsNil() {
		panic(mapErrorMsg)
	}

	typ := vfn.Type()
	if (typ.NumIn() != 1) || (typ.NumOut() != 1) {
		panic(mapErrorMsg)
	}

	argTyp := typ.In(0)

	return func(arg interface{}) interface{} {
		return vfn.Call([]reflect.Value{reflect.ValueOf(arg).Convert(argTyp)})[0].Interface()
	}
}

// Filter adapts a func(any) bool into a func(interface{}) bool.
// If fn happens to already be a func(interface{}) bool, it is returned as is.
// Otherwise, each invocation converts the arg passed to the type the func receives.
// Panics if fn is not a non-nil function of one argument that returns bool.
func Filter(fn interface{}) func(interface{}) bool {
	if res, isa := fn.(func(interface{}) bool); isa {
		return res
	}

	vfn := reflect.ValueOf(fn)
	if (vfn.Kind() != reflect.Func) || vfn.IsNil() {
		panic(filterErrorMsg)
	}

	typ := vfn.Type()
	if (typ.NumIn() != 1) || (typ.NumOut() != 1) || (typ.Out(0).Kind() != reflect.Bool) {
		panic(filterErrorMsg)
	}

	argTyp := typ.In(0)

	return func(arg interface{}) bool {
		return vfn.Call([]reflect.Value{reflect.ValueOf(arg).Convert(argTyp)})[0].Bool()
	}
}

// IsNilable returns true if val is nil or the type of val is a nilable kind
// (Chan, Func, Interface, Map, Ptr, Slice).
func IsNilable(val interface{}) bool {
	rv := reflect.ValueOf(val)
	if !rv.IsValid() {
		return true
	}

	k := rv.Type().Kind()
	return (k >= reflect.Chan) && (k <= reflect.Slice)
}

// IsNil returns true if val is nil, or is a nilable kind whose value is nil.
func IsNil(val interface{}) bool {
	if !IsNilable(val) {
		return false
	}

	rv := reflect.ValueOf(val)
	return (!rv.IsValid()) || rv.IsNil()
}

// EqualTo returns a func(interface{}) bool that returns true if the func arg
// equals val, using == after converting arg to the type of val. Falls back to
// pointer-identity comparison for non-comparable types.
func EqualTo(val interface{}) func(interface{}) bool {
	var (
		valIsNil = IsNil(val)
		valTyp   = reflect.TypeOf(val)
	)

	return func(arg interface{}) bool {
		argTyp := reflect.TypeOf(arg)

		if valTyp == nil {
			return argTyp == nil
		}

		if (argTyp == nil) || (!argTyp.ConvertibleTo(valTyp)) {
			return false
		}

		if valIsNil {
			return IsNil(arg)
		}

		if !valTyp.Comparable() {
			return fmt.Sprintf("%p", val) == fmt.Sprintf("%p", arg)
		}

		return (!IsNil(arg)) && (val == reflect.ValueOf(arg).Convert(valTyp).Interface())
	}
}

// DeepEqualTo returns a func(interface{}) bool that returns true if the func
// arg is reflect.DeepEqual to val, after converting arg to the type of val.
// Used in place of == so that slice- and map-valued elements can be compared
// without panicking.
func DeepEqualTo(val interface{}) func(interface{}) bool {
	var (
		valIsNil = IsNil(val)
		valTyp   = reflect.TypeOf(val)
	)

	return func(arg interface{}) bool {
		argTyp := reflect.TypeOf(arg)

		if valTyp == nil {
			return argTyp == nil
		}

		if (argTyp == nil) || (!argTyp.ConvertibleTo(valTyp)) {
			return false
		}

		if valIsNil {
			return IsNil(arg)
		}

		return (!IsNil(arg)) && reflect.DeepEqual(val, reflect.ValueOf(arg).Convert(valTyp).Interface())
	}
}

// IsLessableKind returns true if kind represents a numeric type or a string.
func IsLessableKind(kind reflect.Kind) bool {
	return ((kind >= reflect.Int) && (kind <= reflect.Float64)) || (kind == reflect.String)
}

// LessThan returns a func(val1, val2 interface{}) bool that returns true if
// val1 < val2, where both args are converted to the type of val first.
// Panics if val is nil or not of a lessable kind.
func LessThan(val interface{}) func(val1, val2 interface{}) bool {
	if IsNil(val) {
		panic(lessThanErrorMsg)
	}

	kind := reflect.ValueOf(val).Kind()
	if !IsLessableKind(kind) {
		panic(lessThanErrorMsg)
	}

	switch {
	case kind >= reflect.Int && kind <= reflect.Int64:
		typ := reflect.TypeOf(int64(0))
		return func(val1, val2 interface{}) bool {
			return reflect.ValueOf(val1).Convert(typ).Int() < reflect.ValueOf(val2).Convert(typ).Int()
		}

	case kind >= reflect.Uint && kind <= reflect.Uint64:
		typ := reflect.TypeOf(uint64(0))
		return func(val1, val2 interface{}) bool {
			return reflect.ValueOf(val1).Convert(typ).Uint() < reflect.ValueOf(val2).Convert(typ).Uint()
		}

	case kind == reflect.Float32 || kind == reflect.Float64:
		typ := reflect.TypeOf(float64(0))
		return func(val1, val2 interface{}) bool {
			return reflect.ValueOf(val1).Convert(typ).Float() < reflect.ValueOf(val2).Convert(typ).Float()
		}

	default: // string
		typ := reflect.TypeOf("")
		return func(val1, val2 interface{}) bool {
			return reflect.ValueOf(val1).Convert(typ).String() < reflect.ValueOf(val2).Convert(typ).String()
		}
	}
}

var (
	// IntSortFunc returns true if int64 val1 < val2.
	IntSortFunc = LessThan(int64(0))

	// UintSortFunc returns true if uint64 val1 < val2.
	UintSortFunc = LessThan(uint64(0))

	// FloatSortFunc returns true if float64 val1 < val2.
	FloatSortFunc = LessThan(float64(0))

	// StringSortFunc returns true if string val1 < val2.
	StringSortFunc = LessThan("")
)

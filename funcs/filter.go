// SPDX-License-Identifier: Apache-2.0

package funcs

// FilterAll adapts any number of funcs of shape func(any) bool into a slice
// of func(interface{}) bool, using Filter on each.
func FilterAll(fns ...interface{}) []func(interface{}) bool {
	adaptedFns := make([]func(interface{}) bool, len(fns))
	for i, fn := range fns {
		adaptedFns[i] = Filter(fn)
	}

	return adaptedFns
}

// And adapts any number of funcs of shape func(any) bool into their
// conjunction. Short-circuits on the first func that returns false.
func And(fns ...interface{}) func(interface{}) bool {
	adaptedFns := FilterAll(fns...)

	return func(val interface{}) bool {
		for _, fn := range adaptedFns {
			if !fn(val) {
				return false
			}
		}

		return true
	}
}

// Or adapts any number of funcs of shape func(any) bool into their
// disjunction. Short-circuits on the first func that returns true.
func Or(fns ...interface{}) func(interface{}) bool {
	adaptedFns := FilterAll(fns...)

	return func(val interface{}) bool {
		for _, fn := range adaptedFns {
			if fn(val) {
				return true
			}
		}

		return false
	}
}

// Not adapts a func(any) bool into its negation.
func Not(fn interface{}) func(interface{}) bool {
	adaptedFn := Filter(fn)

	return func(val interface{}) bool {
		return !adaptedFn(val)
	}
}

// GreaterThan returns a func(val1, val2 interface{}) bool that returns true
// if val1 > val2, where both args are converted to the type of val first.
// Panics if val is nil or not of a lessable kind.
func GreaterThan(val interface{}) func(val1, val2 interface{}) bool {
	lt := LessThan(val)
	return func(val1, val2 interface{}) bool {
		return lt(val2, val1)
	}
}

// SPDX-License-Identifier: Apache-2.0

// Package optional provides a value type for representing a result that may
// or may not be present, as returned by the aggregate Finisher methods in the
// stream package (Average, First, Last, Max, Min, Sum) when the source they
// were driven against was empty.
package optional

import "fmt"

// Error constants
const (
	ErrGetOnEmptyOptional = "Optional.Get called on an empty Optional"
)

// Optional wraps a value that may or may not be present.
// The zero value of Optional is empty.
type Optional struct {
	value   interface{}
	present bool
}

// Of constructs an Optional. Called with no arguments, it constructs an
// empty Optional. Called with one argument, it constructs an Optional
// containing that value, even if the value is nil.
// Panics if called with more than one argument.
func Of(value ...interface{}) Optional {
	switch len(value) {
	case 0:
		return Optional{}
	case 1:
		return Optional{value: value[0], present: true}
	default:
		panic("Of accepts at most one value")
	}
}

// IsPresent returns true if the Optional contains a value.
func (o Optional) IsPresent() bool {
	return o.present
}

// Get returns the wrapped value.
// Panics if the Optional is empty.
func (o Optional) Get() interface{} {
	if !o.present {
		panic(ErrGetOnEmptyOptional)
	}

	return o.value
}

// OrElse returns the wrapped value if present, else returns the given default.
func (o Optional) OrElse(deflt interface{}) interface{} {
	if o.present {
		return o.value
	}

	return deflt
}

// String returns a string representation of the Optional, for debugging.
func (o Optional) String() string {
	if !o.present {
		return "Optional()"
	}

	return fmt.Sprintf("Optional(%v)", o.value)
}

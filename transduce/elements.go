// SPDX-License-Identifier: Apache-2.0

package transduce

import (
	"reflect"

	"github.com/bantling/transduce/funcs"
)

// Mapping returns a Transducer that forwards handler.Process(input) in
// place of input. handler is adapted via NewHandler.
func Mapping(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				return downstream.Step(result, h.Process(input))
			},
		}
	}
}

// Filtering returns a Transducer that forwards input unchanged when
// handler.Process(input) is truthy, and swallows it otherwise.
func Filtering(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if truthy(h.Process(input)) {
					return downstream.Step(result, input)
				}

				return result
			},
		}
	}
}

// Removing returns a Transducer that forwards input unchanged when
// handler.Process(input) is falsy, and swallows it otherwise. The dual of
// Filtering.
func Removing(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if !truthy(h.Process(input)) {
					return downstream.Step(result, input)
				}

				return result
			},
		}
	}
}

// Keeping returns a Transducer that forwards handler.Process(input) in place
// of input, unless the result is nil, in which case input is swallowed.
func Keeping(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				x := h.Process(input)
				if funcs.IsNil(x) {
					return result
				}

				return downstream.Step(result, x)
			},
		}
	}
}

// KeepIndexed returns a Transducer that forwards handler.Process(index,
// input) in place of input, where index starts at 0 and increments once per
// input seen, unless the result is nil, in which case input is swallowed.
func KeepIndexed(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		index := -1

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				index++
				x := h.Process(index, input)
				if funcs.IsNil(x) {
					return result
				}

				return downstream.Step(result, x)
			},
		}
	}
}

// Taking returns a stateful Transducer that forwards at most the first n
// inputs, then terminates the drive with Reduced. If n == 0, the very first
// Step returns Reduced(result) without forwarding anything.
func Taking(n int) Transducer {
	return func(downstream Reducer) Reducer {
		remaining := n

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				current := remaining
				remaining--

				if current > 0 {
					result = downstream.Step(result, input)
				}

				if remaining > 0 {
					return result
				}

				return EnsureReduced(result)
			},
		}
	}
}

// Dropping returns a stateful Transducer that swallows the first n inputs
// and forwards the rest unchanged.
func Dropping(n int) Transducer {
	return func(downstream Reducer) Reducer {
		remaining := n

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if remaining > 0 {
					remaining--
					return result
				}

				return downstream.Step(result, input)
			},
		}
	}
}

// TakeWhile returns a stateful Transducer that forwards inputs while
// handler.Process(input) is truthy, then terminates the drive with Reduced
// on (and without forwarding) the first falsy input.
func TakeWhile(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if truthy(h.Process(input)) {
					return downstream.Step(result, input)
				}

				return EnsureReduced(result)
			},
		}
	}
}

// DropWhile returns a stateful Transducer that swallows inputs while
// handler.Process(input) is truthy, then forwards that input and all
// subsequent inputs unchanged. The internal "done dropping" flag is
// explicitly initialized false.
func DropWhile(handler interface{}) Transducer {
	h := NewHandler(handler)

	return func(downstream Reducer) Reducer {
		doneDropping := false

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if !doneDropping && truthy(h.Process(input)) {
					return result
				}

				doneDropping = true
				return downstream.Step(result, input)
			},
		}
	}
}

// TakeNth returns a stateful Transducer that forwards every n-th input
// (1-indexed: the n-th, 2n-th, 3n-th, ...) and swallows the rest.
// Panics if n <= 0.
func TakeNth(n int) Transducer {
	if n <= 0 {
		panic("TakeNth requires n > 0")
	}

	return func(downstream Reducer) Reducer {
		count := 0

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				count++
				if count%n == 0 {
					return downstream.Step(result, input)
				}

				return result
			},
		}
	}
}

// Dedupe returns a stateful Transducer that swallows any input that deep-
// equals the immediately preceding forwarded input, using funcs.DeepEqualTo
// (Go's == panics on non-comparable element types such as slices and maps).
// Uses an explicit has-seen-one flag rather than a counter.
func Dedupe() Transducer {
	return func(downstream Reducer) Reducer {
		var (
			prior interface{}
			seen  bool
		)

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if seen && funcs.DeepEqualTo(prior)(input) {
					return result
				}

				prior, seen = input, true
				return downstream.Step(result, input)
			},
		}
	}
}

// Replace returns a Transducer that looks up each input in smapOrSlice and
// forwards the replacement if found, or the input unchanged otherwise.
// smapOrSlice must be a map (matched by key, via funcs.ValueOfKey) or a
// slice/array (matched by position, via funcs.IndexOf). The slice/array form
// is preserved for fidelity with the library this package's behavior is
// drawn from, but it is only useful when inputs are themselves small
// non-negative integers, since the lookup key is the position, not the
// input value.
// Panics if smapOrSlice is not a map, slice, or array.
func Replace(smapOrSlice interface{}) Transducer {
	lookup := replaceLookup(smapOrSlice)

	return func(downstream Reducer) Reducer {
		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if replacement, found := lookup(input); found {
					return downstream.Step(result, replacement)
				}

				return downstream.Step(result, input)
			},
		}
	}
}

func replaceLookup(smapOrSlice interface{}) func(input interface{}) (interface{}, bool) {
	if smapOrSlice == nil {
		panic("Replace requires a non-nil map, slice, or array")
	}

	switch reflect.ValueOf(smapOrSlice).Kind() {
	case reflect.Map:
		return func(input interface{}) (interface{}, bool) {
			return funcs.ValueOfKey(smapOrSlice, input)
		}

	case reflect.Slice, reflect.Array:
		return func(input interface{}) (interface{}, bool) {
			idx, isa := input.(int)
			if !isa {
				return nil, false
			}

			return funcs.IndexOf(smapOrSlice, idx)
		}

	default:
		panic("Replace requires a map, slice, or array")
	}
}

// truthy adapts a Handler's Process result into a bool, for handlers whose
// underlying func returns bool (the common predicate case).
func truthy(val interface{}) bool {
	b, isa := val.(bool)
	if !isa {
		panic("predicate handler must return a bool")
	}

	return b
}

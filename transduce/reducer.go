// SPDX-License-Identifier: Apache-2.0

package transduce

import (
	"fmt"
	"reflect"
)

// Error constants
const (
	ErrMissingSeed      = reducerError("transduce: no seed was provided, and the reducer being driven has none")
	ErrMissingOperation = reducerError("transduce: the reducer is neither a Reducer, nor a func/method-name adaptable into one")

	errTooManySeedsMsg     = "NewReducer accepts at most one seed"
	errNoSuchReducerMethod = "reducer step method does not exist on the result type"
)

// reducerError is a constant error type, so ErrMissingSeed/ErrMissingOperation
// can be declared as typed string constants that satisfy the error interface
// and can be compared with == by callers.
type reducerError string

func (e reducerError) Error() string {
	return string(e)
}

// Reducer folds a sequence of inputs into a single accumulated result.
// Init supplies the seed accumulator, Step folds one input into the current
// result, and Complete finalizes the accumulator once the drive is done.
type Reducer interface {
	Init() interface{}
	Step(result, input interface{}) interface{}
	Complete(result interface{}) interface{}
}

// seeded is implemented by reducers constructed by NewReducer, so that
// Transduce can detect a missing seed before calling Init, rather than
// the reducer panicking partway through a drive.
type seeded interface {
	hasSeed() bool
}

type baseReducer struct {
	step     func(result, input interface{}) interface{}
	seed     interface{}
	withSeed bool
}

func (b *baseReducer) Init() interface{} {
	if !b.withSeed {
		panic(ErrMissingSeed)
	}

	return b.seed
}

func (b *baseReducer) Step(result, input interface{}) interface{} {
	return b.step(result, input)
}

func (b *baseReducer) Complete(result interface{}) interface{} {
	return result
}

func (b *baseReducer) hasSeed() bool {
	return b.withSeed
}

// NewReducer constructs a Reducer from a step, which must be a
// func(result, input interface{}) interface{} (or any func of two arguments
// and one result, adapted via reflection), or a non-empty method-name string
// to be invoked on the result accumulator, as in result.<step>(input).
// init is an optional seed; at most one may be given.
// Returns ErrMissingOperation if step is not a Reducer-adaptable shape.
func NewReducer(step interface{}, init ...interface{}) (Reducer, error) {
	if len(init) > 1 {
		panic(errTooManySeedsMsg)
	}

	var stepFn func(result, input interface{}) interface{}

	switch s := step.(type) {
	case string:
		if s == "" {
			return nil, ErrMissingOperation
		}

		stepFn = methodStep(s)

	default:
		fn, isa := binaryStep(step)
		if !isa {
			return nil, ErrMissingOperation
		}

		stepFn = fn
	}

	br := &baseReducer{step: stepFn}
	if len(init) == 1 {
		br.seed = init[0]
		br.withSeed = true
	}

	return br, nil
}

// methodStep adapts a method name into a step that invokes that method on
// the result accumulator, passing input as the sole argument.
// Panics if the method does not exist on the accumulator's type.
func methodStep(name string) func(result, input interface{}) interface{} {
	return func(result, input interface{}) interface{} {
		m := reflect.ValueOf(result).MethodByName(name)
		if !m.IsValid() {
			panic(fmt.Sprintf("%s: %q on %T", errNoSuchReducerMethod, name, result))
		}

		return m.Call([]reflect.Value{reflect.ValueOf(input)})[0].Interface()
	}
}

// binaryStep adapts a func of two arguments and one result into a
// func(result, input interface{}) interface{}, dispatching on shape once.
func binaryStep(step interface{}) (func(result, input interface{}) interface{}, bool) {
	if fn, isa := step.(func(result, input interface{}) interface{}); isa {
		return fn, true
	}

	vfn := reflect.ValueOf(step)
	if (vfn.Kind() != reflect.Func) || vfn.IsNil() {
		return nil, false
	}

	typ := vfn.Type()
	if (typ.NumIn() != 2) || (typ.NumOut() != 1) {
		return nil, false
	}

	in0, in1 := typ.In(0), typ.In(1)

	return func(result, input interface{}) interface{} {
		return vfn.Call([]reflect.Value{
			reflect.ValueOf(result).Convert(in0),
			reflect.ValueOf(input).Convert(in1),
		})[0].Interface()
	}, true
}

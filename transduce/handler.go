// SPDX-License-Identifier: Apache-2.0

package transduce

import (
	"reflect"

	"jsouthworth.net/go/dyn"
)

const (
	errHandlerCannotBeNil   = "handler cannot be nil"
	errNoSuchHandlerMethod  = "handler method does not exist on the input type"
)

// Processor is implemented by any value that wants to act as a handler
// directly, without being adapted from a func or a method-name string.
type Processor interface {
	Process(args ...interface{}) interface{}
}

// Handler is the uniform adapter every handler-taking transducer constructor
// builds from its argument. It is constructed once from one of {func,
// method-name string, Processor} and picks its process function once, at
// construction time. For the recognized func shapes, a method name and a
// Processor, Process performs no further shape inspection; any other func is
// called through dyn.Apply on every Process call.
type Handler struct {
	process func(args ...interface{}) interface{}
}

// NewHandler builds a *Handler from h, which must be one of:
//   - a func(interface{}) interface{} or func(interface{}) bool (recognized
//     without reflection)
//   - a func(int, interface{}) interface{} (used by KeepIndexed)
//   - any other func, called through jsouthworth.net/go/dyn's Apply on every
//     Process call
//   - a non-empty method-name string, invoked by reflection on the last
//     Process argument, with any leading arguments passed to the method
//   - a value implementing Processor
//
// Panics if h is nil or an empty string.
func NewHandler(h interface{}) *Handler {
	if h == nil {
		panic(errHandlerCannotBeNil)
	}

	switch v := h.(type) {
	case func(interface{}) interface{}:
		return &Handler{process: func(args ...interface{}) interface{} {
			return v(args[0])
		}}

	case func(interface{}) bool:
		return &Handler{process: func(args ...interface{}) interface{} {
			return v(args[0])
		}}

	case func(int, interface{}) interface{}:
		return &Handler{process: func(args ...interface{}) interface{} {
			return v(args[0].(int), args[1])
		}}

	case string:
		if v == "" {
			panic(errHandlerCannotBeNil)
		}

		return &Handler{process: func(args ...interface{}) interface{} {
			// The receiver is always the last argument (the input); any
			// leading arguments (e.g. KeepIndexed's index) are passed on
			// to the named method.
			receiver := args[len(args)-1]
			callArgs := args[:len(args)-1]

			m := reflect.ValueOf(receiver).MethodByName(v)
			if !m.IsValid() {
				panic(errNoSuchHandlerMethod + ": " + v)
			}

			in := make([]reflect.Value, len(callArgs))
			for i, a := range callArgs {
				in[i] = reflect.ValueOf(a)
			}

			return m.Call(in)[0].Interface()
		}}

	case Processor:
		return &Handler{process: v.Process}

	default:
		// Any other func shape: only its kind is checked here; each Process
		// call goes through dyn.Apply, the same dynamic-apply library jpx40's
		// transduce package leans on for arbitrary-arity handler blocks.
		rv := reflect.ValueOf(h)
		if rv.Kind() != reflect.Func {
			panic(errHandlerCannotBeNil)
		}

		return &Handler{process: func(args ...interface{}) interface{} {
			return dyn.Apply(h, args...)
		}}
	}
}

// Process invokes the wrapped handler over one or two arguments: one for the
// common element-wise case, two for KeepIndexed's (index, input).
func (h *Handler) Process(args ...interface{}) interface{} {
	return h.process(args...)
}

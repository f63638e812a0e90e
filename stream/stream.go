// SPDX-License-Identifier: Apache-2.0

// Package stream provides a builder-pattern API layered on top of the
// transduce package, so per-element transforms (filter, map, peek) and
// multi-element transforms (distinct, limit, skip, sort) can be composed
// once and reused across any number of source iterables.
package stream

import (
	"reflect"

	"github.com/bantling/transduce/iter"
	"github.com/bantling/transduce/transduce"
)

// IterateFunc adapts any func that accepts and returns the exact same type into a func(interface{}) interface{} suitable for Iterate.
// Panics if f is not a func that accepts and returns one type that are exactly the same.
// If f happens to already be a func(interface{}) interface{}, it is returned as is.
func IterateFunc(f interface{}) func(interface{}) interface{} {
	if iterFunc, isa := f.(func(interface{}) interface{}); isa {
		return iterFunc
	}

	var (
		val = reflect.ValueOf(f)
		typ = val.Type()
	)

	if typ.Kind() != reflect.Func {
		panic("f must be a function")
	}

	if (typ.NumIn() != 1) || (typ.NumOut() != 1) {
		panic("f must be a function that accepts and returns a single value of the exact same type")
	}

	argType, retType := typ.In(0), typ.Out(0)
	if argType != retType {
		panic("f must be a function that accepts and returns a single value of the exact same type")
	}

	return func(arg interface{}) interface{} {
		return val.Call([]reflect.Value{reflect.ValueOf(arg)})[0].Interface()
	}
}

// Iterate takes an initial seed value and an iterative func that is applied to the seed to generate a series of values.
// The result is an infinite series of seed, f(seed), f(f(seed)), ...
// Pair it with Finisher.Limit to make it finite, since the stream drives to completion internally.
func Iterate(seed interface{}, f func(interface{}) interface{}) *iter.Iter {
	nextValue := seed

	return iter.NewIter(
		func() (interface{}, bool) {
			retValue := nextValue
			nextValue = f(nextValue)
			return retValue, true
		},
	)
}

// Stream composes per-element transforms (filter, map, peek) into a single
// transduce.Transducer, deferring any actual iteration until a Finisher
// terminal method drives it over a source.
//
// The idea is to compose a set of transforms, then call a terminal method
// that will invoke the composed transforms and produce a new result.
// All single element transforms are handled by Stream (eg, filter to retain
// elements > 5). All multi element transforms are handled by Finisher (eg,
// distinct elements only).
//
// The Stream.Transform method allows for arbitrary transforms, for cases
// where the transforms provided are not sufficient - any transduce.Transducer
// can be plugged in directly.
//
// As an example, suppose the following sequence is executed:
//
//	stream.New().
//	  Filter(func(i interface{}) bool { return i.(int) < 5 }).
//	  Map(func(i interface{}) interface{} { return i.(int) * 2 }).
//	  AndThen().
//	  Distinct().
//	  Sort(funcs.IntSortFunc).
//	  ToSliceOf(0, iter.Of(1,3,1,2,9,7,2,4,7,5,8,6,8))
//
// The order of operations is exactly as indicated - filter then map each
// element one by one into a new set, finally remove duplicates, sort the
// set, and collect the result into a slice of int.
// The result will be []int{2,4,6,8}.
//
// The zero value is not ready to use, since its transducer is nil; construct
// a Stream with New.
type Stream struct {
	transducer transduce.Transducer
}

// New constructs a new Stream
func New() *Stream {
	return &Stream{transducer: transduce.Compose()}
}

// === Transforms

// Transform composes the current transducer with a new one
func (s *Stream) Transform(t transduce.Transducer) *Stream {
	s.transducer = transduce.Compose(s.transducer, t)
	return s
}

// Filter returns a stream of all elements that pass the given predicate
func (s *Stream) Filter(f func(element interface{}) bool) *Stream {
	return s.Transform(transduce.Filtering(f))
}

// FilterNot returns a stream of all elements that do not pass the given predicate
func (s *Stream) FilterNot(f func(element interface{}) bool) *Stream {
	return s.Transform(transduce.Removing(f))
}

// Map maps each element to a new element, possibly of a different type
func (s *Stream) Map(f func(element interface{}) interface{}) *Stream {
	return s.Transform(transduce.Mapping(f))
}

// Peek returns a stream that calls a function that examines each value and performs an additional operation
func (s *Stream) Peek(f func(interface{})) *Stream {
	return s.Transform(transduce.Mapping(func(element interface{}) interface{} {
		f(element)
		return element
	}))
}

//
// ==== Terminals
//

// Iter drives the composed transforms over source to completion and returns an iterator of the results.
func (s Stream) Iter(source interface{}) *iter.Iter {
	result, err := transduce.Transduce(s.transducer, appendingReducer(), source)
	if err != nil {
		panic(err)
	}

	return iter.Of(result.([]interface{})...)
}

//
// ==== Continuation
//

// AndThen returns a Finisher, which performs additional post processing on the results of the transforms in this Stream.
func (s *Stream) AndThen() *Finisher {
	return &Finisher{
		stream:     s,
		transducer: transduce.Compose(),
	}
}

// appendingReducer is the Reducer every terminal method that needs the full, ordered set of elements drives with.
func appendingReducer() transduce.Reducer {
	r, _ := transduce.NewReducer(func(result, input interface{}) interface{} {
		return append(result.([]interface{}), input)
	}, []interface{}{})

	return r
}

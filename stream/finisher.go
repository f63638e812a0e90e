// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"io"
	"reflect"
	"sort"

	"github.com/bantling/transduce/iter"
	"github.com/bantling/transduce/optional"
	"github.com/bantling/transduce/transduce"
)

// Finisher does two things:
// 1. Apply zero or more transforms that operate across multiple elements after any Stream transforms have been applied to each individual element of the Stream source
// 2. Provide terminal methods that return the final result of applying the Stream and Finisher transforms to the Stream source
//
// The purpose of separating Finisher from Stream is to make the chaining
// method calls accurately represent that all multi-element transforms (eg,
// sorting, deduping) are applied after all single element transforms (eg,
// filtering, mapping).
//
// Both Stream and Finisher transforms are transduce.Transducers under the
// hood; Finisher simply composes its own on top of the Stream it continues.
type Finisher struct {
	stream     *Stream
	transducer transduce.Transducer
}

// combined returns the Stream's transducer composed with this Finisher's own.
func (fin Finisher) combined() transduce.Transducer {
	return transduce.Compose(fin.stream.transducer, fin.transducer)
}

//
// ==== Transforms
//

// Transform composes the current transducer with a new one
func (fin *Finisher) Transform(t transduce.Transducer) *Finisher {
	fin.transducer = transduce.Compose(fin.transducer, t)
	return fin
}

// Distinct composes the current transducer with one that passes through distinct elements only.
// The order of the result is the first occurrence of each distinct element.
// Elements must be a type compatible with a map key.
func (fin *Finisher) Distinct() *Finisher {
	return fin.Transform(func(downstream transduce.Reducer) transduce.Reducer {
		seen := map[interface{}]bool{}

		return &statefulReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if seen[input] {
					return result
				}

				seen[input] = true
				return downstream.Step(result, input)
			},
		}
	})
}

// Duplicate composes the current transducer with one that passes through duplicate elements only.
// The order of the result is the second occurrence of each duplicate element.
// Elements must be a type compatible with a map key.
func (fin *Finisher) Duplicate() *Finisher {
	return fin.Transform(func(downstream transduce.Reducer) transduce.Reducer {
		seen := map[interface{}]bool{}

		return &statefulReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				if seen[input] {
					return downstream.Step(result, input)
				}

				seen[input] = true
				return result
			},
		}
	})
}

// Filter composes the current transducer with a filter of all elements that pass the given predicate
func (fin *Finisher) Filter(f func(element interface{}) bool) *Finisher {
	return fin.Transform(transduce.Filtering(f))
}

// FilterNot composes the current transducer with a filter of all elements that do not pass the given predicate
func (fin *Finisher) FilterNot(f func(element interface{}) bool) *Finisher {
	return fin.Transform(transduce.Removing(f))
}

// Limit composes the current transducer with one that only passes through the first n elements, ignoring the rest.
func (fin *Finisher) Limit(n uint) *Finisher {
	return fin.Transform(transduce.Taking(int(n)))
}

// Skip composes the current transducer with one that skips the first n elements.
func (fin *Finisher) Skip(n int) *Finisher {
	return fin.Transform(transduce.Dropping(n))
}

// ReverseSort composes the current transducer with one that sorts the values by the provided comparator in reverse order.
// The provided function must compare elements in increasing order, same as for Sort.
func (fin *Finisher) ReverseSort(less func(element1, element2 interface{}) bool) *Finisher {
	return fin.Sort(func(element1, element2 interface{}) bool {
		return !less(element1, element2)
	})
}

// Sort composes the current transducer with one that buffers every element, then passes them on in sorted order.
func (fin *Finisher) Sort(less func(element1, element2 interface{}) bool) *Finisher {
	return fin.Transform(func(downstream transduce.Reducer) transduce.Reducer {
		var buffer []interface{}

		return &statefulReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				buffer = append(buffer, input)
				return result
			},
			complete: func(result interface{}) interface{} {
				sort.Slice(buffer, func(i, j int) bool { return less(buffer[i], buffer[j]) })

				for _, v := range buffer {
					if transduce.IsReduced(result) {
						break
					}

					result = downstream.Step(result, v)
				}

				return downstream.Complete(transduce.Unreduced(result))
			},
		}
	})
}

// statefulReducer is the shared shape for Finisher transducers that need
// state spanning the whole drive (a seen-set, a buffer) rather than a pure
// per-element mapping.
type statefulReducer struct {
	downstream transduce.Reducer
	step       func(result, input interface{}) interface{}
	complete   func(result interface{}) interface{}
}

func (s *statefulReducer) Init() interface{} {
	return s.downstream.Init()
}

func (s *statefulReducer) Step(result, input interface{}) interface{} {
	return s.step(result, input)
}

func (s *statefulReducer) Complete(result interface{}) interface{} {
	if s.complete != nil {
		return s.complete(result)
	}

	return s.downstream.Complete(result)
}

//
// ==== Terminals
//

// Iter drives the combined Stream and Finisher transforms over source to completion and returns an iterator of the results.
func (fin Finisher) Iter(source interface{}) *iter.Iter {
	result, err := transduce.Transduce(fin.combined(), appendingReducer(), source)
	if err != nil {
		panic(err)
	}

	return iter.Of(result.([]interface{})...)
}

// shortCircuitReducer drives f over each element and terminates the instant
// check(element) == stopValue is seen, recording stopValue as the verdict;
// absent that, the drive runs to completion and the verdict is !stopValue.
type shortCircuitReducer struct {
	check     func(element interface{}) bool
	stopValue bool
}

func (s *shortCircuitReducer) Init() interface{} {
	return !s.stopValue
}

func (s *shortCircuitReducer) Step(result, input interface{}) interface{} {
	if s.check(input) == s.stopValue {
		return transduce.Reduced(s.stopValue)
	}

	return result
}

func (s *shortCircuitReducer) Complete(result interface{}) interface{} {
	return result
}

// AllMatch is true if the predicate matches all elements, short-circuiting on the first element that does not match.
func (fin Finisher) AllMatch(f func(element interface{}) bool, source interface{}) bool {
	result, err := transduce.Transduce(fin.combined(), &shortCircuitReducer{check: f, stopValue: false}, source)
	if err != nil {
		panic(err)
	}

	return result.(bool)
}

// AnyMatch is true if the predicate matches any element, short-circuiting on the first match.
func (fin Finisher) AnyMatch(f func(element interface{}) bool, source interface{}) bool {
	result, err := transduce.Transduce(fin.combined(), &shortCircuitReducer{check: f, stopValue: true}, source)
	if err != nil {
		panic(err)
	}

	return result.(bool)
}

// NoneMatch is true if the predicate matches none of the elements, short-circuiting on the first match.
func (fin Finisher) NoneMatch(f func(element interface{}) bool, source interface{}) bool {
	return !fin.AnyMatch(f, source)
}

// Average returns an optional average value.
// The elements must be convertible to a float64.
func (fin Finisher) Average(source interface{}) optional.Optional {
	var (
		sum   float64
		count int
	)

	for it := fin.Iter(source); it.Next(); {
		sum += it.Float64Value()
		count++
	}

	if count == 0 {
		return optional.Of()
	}

	return optional.Of(sum / float64(count))
}

// Count returns the count of all elements.
func (fin Finisher) Count(source interface{}) int {
	count := 0
	for it := fin.Iter(source); it.Next(); {
		count++
	}

	return count
}

// First returns the optional first element of applying any transforms to the stream source.
// Note that an empty Optional means the stream is empty; a nil first element gives a present Optional wrapping nil.
func (fin Finisher) First(source interface{}) optional.Optional {
	if it := fin.Iter(source); it.Next() {
		return optional.Of(it.Value())
	}

	return optional.Of()
}

// ForEach invokes a consumer with each element of the stream.
func (fin Finisher) ForEach(f func(element interface{}), source interface{}) {
	for it := fin.Iter(source); it.Next(); {
		f(it.Value())
	}
}

// GroupBy groups elements by executing the given function on each value to get a key,
// and appending the element to the end of a slice associated with the key in the resulting map.
func (fin Finisher) GroupBy(f func(element interface{}) (key interface{}), source interface{}) map[interface{}][]interface{} {
	m := map[interface{}][]interface{}{}

	for it := fin.Iter(source); it.Next(); {
		k := f(it.Value())
		m[k] = append(m[k], it.Value())
	}

	return m
}

// Last returns the optional last element.
func (fin Finisher) Last(source interface{}) optional.Optional {
	var (
		last  interface{}
		found bool
	)
	for it := fin.Iter(source); it.Next(); {
		last = it.Value()
		found = true
	}

	if !found {
		return optional.Of()
	}

	return optional.Of(last)
}

// Max returns an optional maximum value according to the provided comparator.
func (fin Finisher) Max(less func(element1, element2 interface{}) bool, source interface{}) optional.Optional {
	it := fin.Iter(source)
	if !it.Next() {
		return optional.Of()
	}

	max := it.Value()
	for it.Next() {
		if element := it.Value(); less(max, element) {
			max = element
		}
	}

	return optional.Of(max)
}

// Min returns an optional minimum value according to the provided comparator.
func (fin Finisher) Min(less func(element1, element2 interface{}) bool, source interface{}) optional.Optional {
	it := fin.Iter(source)
	if !it.Next() {
		return optional.Of()
	}

	min := it.Value()
	for it.Next() {
		if element := it.Value(); less(element, min) {
			min = element
		}
	}

	return optional.Of(min)
}

// Reduce uses a function to reduce the stream to a single value by iteratively executing a function
// with the current accumulated value and the next stream element.
// The identity provided is the initial accumulated value, which means the result type is the
// same type as the initial value, which can be any type.
// If there are no elements in the stream, the result is the identity.
// Otherwise, the result is f(f(identity, element1), element2)...
func (fin Finisher) Reduce(identity interface{}, f func(accumulator, element interface{}) interface{}, source interface{}) interface{} {
	result, err := transduce.TransduceSeed(fin.combined(), f, identity, source)
	if err != nil {
		panic(err)
	}

	return result
}

// Sum returns an optional sum value.
// The elements must be convertible to a float64.
func (fin Finisher) Sum(source interface{}) optional.Optional {
	var (
		sum    float64
		hasSum bool
	)

	for it := fin.Iter(source); it.Next(); {
		sum += it.Float64Value()
		hasSum = true
	}

	if !hasSum {
		return optional.Of()
	}

	return optional.Of(sum)
}

// SumAsInt returns an optional sum value.
// The elements must be convertible to an int.
func (fin Finisher) SumAsInt(source interface{}) optional.Optional {
	var (
		sum    int
		hasSum bool
	)

	for it := fin.Iter(source); it.Next(); {
		sum += it.IntValue()
		hasSum = true
	}

	if !hasSum {
		return optional.Of()
	}

	return optional.Of(sum)
}

// SumAsUint returns an optional sum value.
// The elements must be convertible to a uint.
func (fin Finisher) SumAsUint(source interface{}) optional.Optional {
	var (
		sum    uint
		hasSum bool
	)

	for it := fin.Iter(source); it.Next(); {
		sum += it.UintValue()
		hasSum = true
	}

	if !hasSum {
		return optional.Of()
	}

	return optional.Of(sum)
}

// ToMap returns a map of all elements by invoking the given function to get a key/value pair for the map.
// It is up to the function to generate unique keys to prevent values from being overwritten.
func (fin Finisher) ToMap(f func(interface{}) (key interface{}, value interface{}), source interface{}) map[interface{}]interface{} {
	m := map[interface{}]interface{}{}

	for it := fin.Iter(source); it.Next(); {
		k, v := f(it.Value())
		m[k] = v
	}

	return m
}

// ToMapOf returns a map of all elements, where the map key and value types are the same as the types of aKey and aValue.
// EG, if aKey is an int and aValue is a string, then a map[int]string is returned.
// Panics if keys are not convertible to the key type or values are not convertible to the value type.
func (fin Finisher) ToMapOf(f func(interface{}) (key interface{}, value interface{}), aKey, aValue interface{}, source interface{}) interface{} {
	var (
		ktyp = reflect.TypeOf(aKey)
		vtyp = reflect.TypeOf(aValue)
		m    = reflect.MakeMap(reflect.MapOf(ktyp, vtyp))
	)

	for it := fin.Iter(source); it.Next(); {
		k, v := f(it.Value())
		m.SetMapIndex(
			reflect.ValueOf(k).Convert(ktyp),
			reflect.ValueOf(v).Convert(vtyp),
		)
	}

	return m.Interface()
}

// ToSlice returns a slice of all elements.
func (fin Finisher) ToSlice(source interface{}) []interface{} {
	result, err := transduce.Transduce(fin.combined(), appendingReducer(), source)
	if err != nil {
		panic(err)
	}

	return result.([]interface{})
}

// ToSliceOf returns a slice of all elements, where the slice elements are the same type as the type of elementVal.
// EG, if elementVal is an int, a []int is returned.
// Panics if elements are not convertible to the type of elementVal.
func (fin Finisher) ToSliceOf(elementVal interface{}, source interface{}) interface{} {
	var (
		elementTyp = reflect.TypeOf(elementVal)
		array      = reflect.MakeSlice(reflect.SliceOf(elementTyp), 0, 0)
	)

	for it := fin.Iter(source); it.Next(); {
		array = reflect.Append(array, reflect.ValueOf(it.Value()).Convert(elementTyp))
	}

	return array.Interface()
}

// Error constants for CollectInto
const (
	ErrCollectIntoNotAPointer = "CollectInto requires out to be a pointer to a struct or a pointer to a slice of struct"
	ErrCollectIntoEmptySource = "CollectInto requires at least one element when out is a pointer to a struct"
)

// CollectInto drives the combined transforms over source, then decodes the
// resulting map[string]interface{} elements into out using the same
// mapstructure decoder config MapToStruct uses. If out is a pointer to a
// slice of struct, every element is decoded and appended. If out is a
// pointer to a struct, exactly the first element is decoded into it.
// Returns an error if decoding fails; panics if out or the elements are not
// shaped as documented.
func (fin Finisher) CollectInto(out interface{}, source interface{}) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr {
		panic(ErrCollectIntoNotAPointer)
	}

	target := outVal.Elem()

	if target.Kind() == reflect.Slice {
		structTyp := target.Type().Elem()
		result := reflect.MakeSlice(target.Type(), 0, 0)

		for it := fin.Iter(source); it.Next(); {
			mapVal, isa := it.Value().(map[string]interface{})
			if !isa {
				panic(ErrElementIsNotAMap)
			}

			structPtr := reflect.New(structTyp)
			if err := decodeMapInto(mapVal, structPtr.Interface()); err != nil {
				return err
			}

			result = reflect.Append(result, structPtr.Elem())
		}

		target.Set(result)
		return nil
	}

	if target.Kind() != reflect.Struct {
		panic(ErrCollectIntoNotAPointer)
	}

	it := fin.Iter(source)
	if !it.Next() {
		panic(ErrCollectIntoEmptySource)
	}

	mapVal, isa := it.Value().(map[string]interface{})
	if !isa {
		panic(ErrElementIsNotAMap)
	}

	return decodeMapInto(mapVal, out)
}

const toWriterBufSize int = 64 * 1024

// ToByteWriter writes the source to the Writer after applying any transformations.
// Panics if elements are not convertible to byte.
func (fin Finisher) ToByteWriter(w io.Writer, source interface{}) (int, error) {
	var (
		buf        = make([]byte, toWriterBufSize)
		count      = 0
		totalCount = 0
	)

	writeOp := func() (int, error) {
		n, err := w.Write(buf[0:count])
		totalCount += n

		if err != nil {
			return totalCount, err
		}

		count = 0
		return totalCount, nil
	}

	for it := fin.Iter(source); it.Next(); {
		buf[count] = it.ByteValue()
		count++

		if count == toWriterBufSize {
			if n, err := writeOp(); err != nil {
				return n, err
			}
		}
	}

	if count > 0 {
		return writeOp()
	}

	return totalCount, nil
}

// ToRuneWriter writes the source to the Writer after applying any transformations.
// Panics if elements are not convertible to rune.
func (fin Finisher) ToRuneWriter(w io.Writer, source interface{}) (int, error) {
	var (
		buf        = make([]byte, toWriterBufSize)
		count      = 0
		totalCount = 0
	)

	writeOp := func() (int, error) {
		n, err := w.Write(buf[0:count])
		totalCount += n

		if err != nil {
			return totalCount, err
		}

		count = 0
		return totalCount, nil
	}

	for it := fin.Iter(source); it.Next(); {
		for _, runeByte := range []byte(string(it.RuneValue())) {
			buf[count] = runeByte
			count++

			if count == toWriterBufSize {
				if n, err := writeOp(); err != nil {
					return n, err
				}
			}
		}
	}

	if count > 0 {
		return writeOp()
	}

	return totalCount, nil
}

//
// ==== Continuation
//

// AndThen returns a Stream carrying this Finisher's combined transforms, so
// further per-element transforms can be chained on top before a terminal
// method drives the whole pipeline over a source.
func (fin Finisher) AndThen() *Stream {
	return &Stream{transducer: fin.combined()}
}

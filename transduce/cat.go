// SPDX-License-Identifier: Apache-2.0

package transduce

import (
	"github.com/bantling/transduce/iter"
)

// preservingReducer wraps downstream so that whenever its Step returns a
// Reduced, the Reduced is re-wrapped as Reduced(Reduced(...)). This is the
// boundary marker Cat needs so that a termination signalled downstream during
// an inner drive survives the one layer the inner drive unwraps and still
// reaches the outer drive, which then stops too: exactly one wrapper is added
// per inner/outer crossing.
type preservingReducer struct {
	downstream Reducer
}

// PreservingReduced returns a Reducer that behaves like downstream, except
// any Reduced value returned by downstream.Step is wrapped in an additional
// layer of Reduced before being returned. Exported for user code building
// its own nested-drive transducers.
func PreservingReduced(downstream Reducer) Reducer {
	return &preservingReducer{downstream: downstream}
}

func (p *preservingReducer) Init() interface{} {
	return p.downstream.Init()
}

func (p *preservingReducer) Step(result, input interface{}) interface{} {
	ret := p.downstream.Step(result, input)
	if IsReduced(ret) {
		return Reduced(ret)
	}

	return ret
}

func (p *preservingReducer) Complete(result interface{}) interface{} {
	return p.downstream.Complete(result)
}

// Cat returns a Transducer used when the upstream stage produces inputs
// that are themselves iterable. Its Step runs an inner drive over input
// (resolved to an *iter.Iter the same way Transduce resolves its top-level
// source), seeded with the current result, through a PreservingReduced-
// wrapped downstream, and returns the inner drive's result.
func Cat() Transducer {
	return func(downstream Reducer) Reducer {
		preserved := PreservingReduced(downstream)

		return &wrapReducer{
			downstream: downstream,
			step: func(result, input interface{}) interface{} {
				return driveInner(preserved, result, input)
			},
		}
	}
}

// Mapcat maps each input to an iterable via handler, then flattens one
// level: Mapcat(handler) == Compose(Mapping(handler), Cat()).
func Mapcat(handler interface{}) Transducer {
	return Compose(Mapping(handler), Cat())
}

// driveInner runs a nested drive of source through downstream, starting
// from seed. If downstream ever reports Reduced, the loop stops immediately
// and returns that result with exactly one layer of Reduced stripped off —
// the layer PreservingReduced added for this inner/outer crossing — so the
// caller sees the same single-layer Reduced an ordinary (non-cat) stateful
// transducer would have produced.
func driveInner(downstream Reducer, seed interface{}, source interface{}) interface{} {
	it := iter.Resolve(source)

	result := seed
	for it.Next() {
		result = downstream.Step(result, it.Value())
		if IsReduced(result) {
			return Unreduced(result)
		}
	}

	return result
}

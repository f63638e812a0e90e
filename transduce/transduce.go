// SPDX-License-Identifier: Apache-2.0

package transduce

import (
	"github.com/bantling/transduce/iter"
)

// Transduce applies t to r (constructing a base Reducer from r first if
// needed), then drives it to completion over source, using the wrapped
// reducer's own Init() for the seed.
// Returns ErrMissingSeed if r is not already a Reducer and no seed is
// available from either r or the caller.
// Returns ErrMissingOperation if r is neither a Reducer, nor a func/method-
// name adaptable into one.
func Transduce(t Transducer, r interface{}, source interface{}) (interface{}, error) {
	return drive(t, r, nil, false, source)
}

// TransduceSeed is Transduce, but the drive starts from the given seed
// instead of calling the wrapped reducer's Init().
func TransduceSeed(t Transducer, r interface{}, seed interface{}, source interface{}) (interface{}, error) {
	return drive(t, r, seed, true, source)
}

func drive(t Transducer, r interface{}, seed interface{}, haveSeed bool, source interface{}) (interface{}, error) {
	red, err := resolveReducer(r)
	if err != nil {
		return nil, err
	}

	wrapped := t.Apply(red)

	var result interface{}
	if haveSeed {
		result = seed
	} else {
		if s, isa := red.(seeded); isa && !s.hasSeed() {
			return nil, ErrMissingSeed
		}

		result = wrapped.Init()
	}

	it := iter.Resolve(source)
	for it.Next() {
		if IsReduced(result) {
			break
		}

		result = wrapped.Step(result, it.Value())
	}

	return wrapped.Complete(Unreduced(result)), nil
}

// resolveReducer returns r as a Reducer, constructing a base Reducer from it
// via NewReducer (with no seed) if it is not already one.
func resolveReducer(r interface{}) (Reducer, error) {
	if red, isa := r.(Reducer); isa {
		return red, nil
	}

	return NewReducer(r)
}

// SPDX-License-Identifier: Apache-2.0

package transduce

// Transducer wraps a downstream Reducer and returns a new Reducer with
// additional behavior woven into its Step. Transducers are pure values:
// Apply must not mutate the transducer itself, and a single Transducer may
// be reused safely across any number of independent drives.
type Transducer func(Reducer) Reducer

// Apply runs the transducer against downstream, returning the wrapped
// Reducer that implements this transducer's behavior.
func (t Transducer) Apply(downstream Reducer) Reducer {
	return t(downstream)
}

// wrapReducer is the shape shared by every stateless and stateful element
// transducer in elements.go: Init and Complete delegate to the downstream
// Reducer unchanged, and only Step carries the transducer's own behavior.
type wrapReducer struct {
	downstream Reducer
	step       func(result, input interface{}) interface{}
}

func (w *wrapReducer) Init() interface{} {
	return w.downstream.Init()
}

func (w *wrapReducer) Step(result, input interface{}) interface{} {
	return w.step(result, input)
}

func (w *wrapReducer) Complete(result interface{}) interface{} {
	return w.downstream.Complete(result)
}

// Compose returns a Transducer equivalent to applying ts[0], then ts[1], …,
// then ts[len(ts)-1] to each input, by wrapping reducers right-to-left:
// Apply(r) == ts[0].Apply(ts[1].Apply(… ts[len(ts)-1].Apply(r) …)).
// Composing zero transducers yields the identity transducer, whose Apply(r)
// returns r unchanged. Composition is associative.
func Compose(ts ...Transducer) Transducer {
	switch len(ts) {
	case 0:
		return func(r Reducer) Reducer {
			return r
		}

	case 1:
		return ts[0]

	default:
		out := ts[len(ts)-1]
		for i := len(ts) - 2; i >= 0; i-- {
			t := ts[i]
			next := out
			out = func(r Reducer) Reducer {
				return t(next(r))
			}
		}

		return out
	}
}

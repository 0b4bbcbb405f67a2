package transduce

// Reducer is a reducing function: the seed, folding and finalisation logic of
// a reduction, bundled as one value.
//
// Init returns a fresh accumulator seed and must be free of side effects so
// that a single Reducer value can serve any number of independent reductions.
// Step folds one input into the accumulator; it may request an early stop by
// returning a terminated step, after which drivers will not call Step again
// for that reduction. Complete finalises the accumulated value once no
// further input will be supplied (natural exhaustion or early stop) and is
// called exactly once per reduction; for most reducing functions it is the
// identity, stateful pipeline stages use it to flush pending state.
//
// Reducers fed by the drivers in this package are used from a single
// goroutine at a time; side effects belong in Step and Complete only.
type Reducer[A, T any] interface {
	Init() A
	Step(acc A, input T) Step[A]
	Complete(acc A) A
}

// NewReducer assembles a Reducer from up to three functions. A nil init seeds
// with the zero value, a nil step passes the accumulator through untouched
// and a nil complete is the identity.
func NewReducer[A, T any](init func() A, step func(acc A, input T) Step[A], complete func(acc A) A) Reducer[A, T] {
	return &functionReducer[A, T]{init: init, step: step, complete: complete}
}

// Fold lifts a plain fold function into a Reducer which never stops early.
func Fold[A, T any](seed func() A, fold func(acc A, input T) A) Reducer[A, T] {
	return NewReducer[A, T](seed, func(acc A, input T) Step[A] {
		return Continue(fold(acc, input))
	}, nil)
}

type functionReducer[A, T any] struct {
	init     func() A
	step     func(acc A, input T) Step[A]
	complete func(acc A) A
}

func (r *functionReducer[A, T]) Init() A {
	if r.init == nil {
		var zero A
		return zero
	}
	return r.init()
}

func (r *functionReducer[A, T]) Step(acc A, input T) Step[A] {
	if r.step == nil {
		return Continue(acc)
	}
	return r.step(acc, input)
}

func (r *functionReducer[A, T]) Complete(acc A) A {
	if r.complete == nil {
		return acc
	}
	return r.complete(acc)
}

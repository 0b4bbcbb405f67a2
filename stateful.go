package transduce

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/go-transduce/transduce/field"
)

// Take forwards the first n inputs and stops the reduction as soon as the
// nth has been handed downstream, so no further input is requested once the
// quota is met. Stepping an exhausted quota stops the reduction without
// forwarding anything.
func Take[A, T any](n int) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		remaining := n
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if remaining <= 0 {
					return Terminated(acc)
				}
				remaining--
				step := next.Step(acc, input)
				if remaining == 0 {
					return EnsureTerminated(step)
				}
				return step
			},
			next.Complete,
		)
	}
}

// Drop swallows the first n inputs and forwards the rest untouched.
func Drop[A, T any](n int) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		remaining := n
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if remaining > 0 {
					remaining--
					return Continue(acc)
				}
				return next.Step(acc, input)
			},
			next.Complete,
		)
	}
}

// TakeWhile forwards inputs until pred first fails, then stops the reduction
// without forwarding the failing input.
func TakeWhile[A, T any](pred func(T) bool) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if pred(input) {
					return next.Step(acc, input)
				}
				return Terminated(acc)
			},
			next.Complete,
		)
	}
}

// DropWhile swallows inputs until pred first fails, then forwards everything
// from that input on, whatever pred would say about later inputs.
func DropWhile[A, T any](pred func(T) bool) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		dropping := true
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if dropping {
					if pred(input) {
						return Continue(acc)
					}
					dropping = false
				}
				return next.Step(acc, input)
			},
			next.Complete,
		)
	}
}

// TakeNth forwards the first input and every nth one after it. Strides below
// one forward everything.
func TakeNth[A, T any](n int) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		stride := n
		if stride < 1 {
			stride = 1
		}
		index := -1
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				index++
				if index%stride == 0 {
					return next.Step(acc, input)
				}
				return Continue(acc)
			},
			next.Complete,
		)
	}
}

// Dedupe swallows consecutive duplicates.
func Dedupe[A any, T comparable]() Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		var previous *T
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if previous != nil && *previous == input {
					return Continue(acc)
				}
				previous = field.ToOptional(input)
				return next.Step(acc, input)
			},
			next.Complete,
		)
	}
}

// Distinct forwards an input the first time its value is seen and swallows
// every later occurrence. The values seen so far are retained for the whole
// reduction, so memory grows with the number of distinct inputs.
func Distinct[A any, T comparable]() Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		seen := mapset.NewThreadUnsafeSet[T]()
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if !seen.Add(input) {
					return Continue(acc)
				}
				return next.Step(acc, input)
			},
			next.Complete,
		)
	}
}

// PartitionAll groups inputs into slices of the size provided and hands each
// full group downstream. A last short group is flushed when the reduction
// completes, so no pending input is ever lost.
func PartitionAll[A, T any](size int) Transducer[A, T, []T] {
	return func(next Reducer[A, []T]) Reducer[A, T] {
		groupSize := size
		if groupSize < 1 {
			groupSize = 1
		}
		var pending []T
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				pending = append(pending, input)
				if len(pending) < groupSize {
					return Continue(acc)
				}
				group := pending
				pending = nil
				return next.Step(acc, group)
			},
			func(acc A) A {
				if len(pending) > 0 {
					group := pending
					pending = nil
					acc = next.Step(acc, group).Acc()
				}
				return next.Complete(acc)
			},
		)
	}
}

// PartitionBy groups consecutive inputs sharing a key and hands each group
// downstream when the key changes. The pending group is flushed when the
// reduction completes.
func PartitionBy[A, T any, K comparable](key func(T) K) Transducer[A, T, []T] {
	return func(next Reducer[A, []T]) Reducer[A, T] {
		var pending []T
		var current K
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				k := key(input)
				if len(pending) == 0 || k == current {
					current = k
					pending = append(pending, input)
					return Continue(acc)
				}
				group := pending
				pending = []T{input}
				current = k
				return next.Step(acc, group)
			},
			func(acc A) A {
				if len(pending) > 0 {
					group := pending
					pending = nil
					acc = next.Step(acc, group).Acc()
				}
				return next.Complete(acc)
			},
		)
	}
}

package transduce

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/go-transduce/transduce/field"
)

// Number constrains the numeric collectors shipped with this package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Append collects every input into a slice in arrival order.
func Append[T any]() Reducer[[]T, T] {
	return NewReducer[[]T, T](
		func() []T { return nil },
		func(acc []T, input T) Step[[]T] {
			return Continue(append(acc, input))
		},
		nil,
	)
}

// Sum adds every input.
func Sum[N Number]() Reducer[N, N] {
	return Fold(
		func() N { var zero N; return zero },
		func(acc N, input N) N { return acc + input },
	)
}

// Count counts inputs regardless of their value.
func Count[T any]() Reducer[int, T] {
	return Fold(
		func() int { return 0 },
		func(acc int, _ T) int { return acc + 1 },
	)
}

// First retains the first input and stops the reduction straight after it.
// The accumulator stays nil when no input was supplied at all.
func First[T any]() Reducer[*T, T] {
	return NewReducer[*T, T](
		nil,
		func(_ *T, input T) Step[*T] {
			return Terminated(field.ToOptional(input))
		},
		nil,
	)
}

// Last retains the most recent input, or nil when no input was supplied.
func Last[T any]() Reducer[*T, T] {
	return NewReducer[*T, T](
		nil,
		func(_ *T, input T) Step[*T] {
			return Continue(field.ToOptional(input))
		},
		nil,
	)
}

// Join concatenates string inputs with the separator provided. The running
// accumulator holds the collected parts and the final string is only rendered
// once the reduction completes, hence the boxed accumulator.
func Join(separator string) Reducer[any, string] {
	return NewReducer[any, string](
		func() any { return []string(nil) },
		func(acc any, input string) Step[any] {
			return Continue[any](append(acc.([]string), input))
		},
		func(acc any) any {
			return strings.Join(acc.([]string), separator)
		},
	)
}

type meanState[N Number] struct {
	sum   N
	count int
}

// Mean averages its inputs. The running accumulator carries the sum and the
// count; completing the reduction turns them into a float64 average, a shape
// change which requires the accumulator to be boxed. An empty reduction
// averages to zero.
func Mean[N Number]() Reducer[any, N] {
	return NewReducer[any, N](
		func() any { return meanState[N]{} },
		func(acc any, input N) Step[any] {
			state := acc.(meanState[N])
			state.sum += input
			state.count++
			return Continue[any](state)
		},
		func(acc any) any {
			state := acc.(meanState[N])
			if state.count == 0 {
				return float64(0)
			}
			return float64(state.sum) / float64(state.count)
		},
	)
}

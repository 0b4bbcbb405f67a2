package transduce

// Transducer transforms a Reducer accepting Out elements into a Reducer
// accepting In elements, leaving the accumulator type alone. Because the
// transformation only ever decorates the reducing function, a transducer
// knows nothing about where its inputs come from nor about what the final
// accumulation is: the same value can decorate a slice collector, a sum or a
// channel-fed reduction alike.
//
// Building a transducer is pure; any per-reduction state is allocated when
// the transducer is applied to a reducing function, so applying the same
// value twice yields two fully independent reductions.
type Transducer[A, In, Out any] func(next Reducer[A, Out]) Reducer[A, In]

// Identity returns the transducer leaving the reducing function untouched.
// It is the neutral element of Compose.
func Identity[A, T any]() Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		return next
	}
}

// Compose chains stages sharing one element type so that input flows through
// them from left to right: during a reduction driven by Compose(f, g), every
// element passes through f first, then g, then the base reducing function.
// The stages are applied to the reducing function in the reverse order,
// Compose(f, g)(rf) = f(g(rf)), which is what makes the left-to-right data
// flow come out.
func Compose[A, T any](stages ...Transducer[A, T, T]) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		for i := len(stages) - 1; i >= 0; i-- {
			next = stages[i](next)
		}
		return next
	}
}

// Compose2 chains two stages whose element types differ. As with Compose,
// input flows left to right: through first, then second, then the base
// reducing function.
func Compose2[A, In, Mid, Out any](first Transducer[A, In, Mid], second Transducer[A, Mid, Out]) Transducer[A, In, Out] {
	return func(next Reducer[A, Out]) Reducer[A, In] {
		return first(second(next))
	}
}

// Compose3 chains three stages whose element types differ.
func Compose3[A, In, Mid1, Mid2, Out any](first Transducer[A, In, Mid1], second Transducer[A, Mid1, Mid2], third Transducer[A, Mid2, Out]) Transducer[A, In, Out] {
	return Compose2(Compose2(first, second), third)
}

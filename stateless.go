package transduce

// Map transforms every input with f before handing it to the next stage.
func Map[A, In, Out any](f func(In) Out) Transducer[A, In, Out] {
	return func(next Reducer[A, Out]) Reducer[A, In] {
		return NewReducer[A, In](
			next.Init,
			func(acc A, input In) Step[A] {
				return next.Step(acc, f(input))
			},
			next.Complete,
		)
	}
}

// Filter forwards the inputs satisfying pred and swallows the rest.
func Filter[A, T any](pred func(T) bool) Transducer[A, T, T] {
	return func(next Reducer[A, T]) Reducer[A, T] {
		return NewReducer[A, T](
			next.Init,
			func(acc A, input T) Step[A] {
				if pred(input) {
					return next.Step(acc, input)
				}
				return Continue(acc)
			},
			next.Complete,
		)
	}
}

// Remove is the opposite of Filter: it swallows the inputs satisfying pred.
func Remove[A, T any](pred func(T) bool) Transducer[A, T, T] {
	return Filter[A](func(input T) bool {
		return !pred(input)
	})
}

// Tap invokes observe on every input and forwards it untouched. It is meant
// for maintaining external counters or tracing a pipeline without disturbing
// it.
func Tap[A, T any](observe func(T)) Transducer[A, T, T] {
	return Map[A](func(input T) T {
		observe(input)
		return input
	})
}

// Mapcat transforms every input into a list of outputs and hands them to the
// next stage one by one, stopping mid-list if the next stage terminates.
func Mapcat[A, In, Out any](f func(In) []Out) Transducer[A, In, Out] {
	return func(next Reducer[A, Out]) Reducer[A, In] {
		return NewReducer[A, In](
			next.Init,
			func(acc A, input In) Step[A] {
				step := Continue(acc)
				for _, output := range f(input) {
					step = next.Step(step.Acc(), output)
					if step.IsTerminated() {
						break
					}
				}
				return step
			},
			next.Complete,
		)
	}
}

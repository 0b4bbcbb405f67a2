package transduce

import "sort"

// Box erases the accumulator type of a Reducer so that reducing functions
// accumulating different types can ride together in a fan-out such as Juxt
// or Fuse.
func Box[A, T any](rf Reducer[A, T]) Reducer[any, T] {
	return NewReducer[any, T](
		func() any { return rf.Init() },
		func(acc any, input T) Step[any] {
			step := rf.Step(acc.(A), input)
			if step.IsTerminated() {
				return Terminated[any](step.Acc())
			}
			return Continue[any](step.Acc())
		},
		func(acc any) any { return rf.Complete(acc.(A)) },
	)
}

// Juxt fans every input out to several reducing functions running side by
// side over the same reduction. While the reduction is running the
// accumulator holds one slot per component carrying that component's own
// accumulator and stop flag; completing the reduction replaces each slot with
// the component's finalised value, in construction order.
//
// A component which stops early is frozen: it is fed nothing further but its
// accumulator is kept so it can still be finalised. The fan-out as a whole
// only stops once every component has stopped, and Complete finalises every
// component exactly once, frozen or not.
func Juxt[T any](rfs ...Reducer[any, T]) Reducer[[]any, T] {
	return NewReducer[[]any, T](
		func() []any {
			acc := make([]any, len(rfs))
			for i := range rfs {
				acc[i] = Continue[any](rfs[i].Init())
			}
			return acc
		},
		func(acc []any, input T) Step[[]any] {
			live := 0
			for i := range rfs {
				slot := acc[i].(Step[any])
				if slot.IsTerminated() {
					continue
				}
				slot = rfs[i].Step(slot.Acc(), input)
				acc[i] = slot
				if !slot.IsTerminated() {
					live++
				}
			}
			if live == 0 {
				return Terminated(acc)
			}
			return Continue(acc)
		},
		func(acc []any) []any {
			completed := make([]any, len(acc))
			for i := range rfs {
				completed[i] = rfs[i].Complete(acc[i].(Step[any]).Acc())
			}
			return completed
		},
	)
}

// PreStep returns a Reducer transforming every input with f before handing
// it to rf. It is the effect of Map applied directly to a reducing function
// rather than woven into a pipeline.
func PreStep[A, In, Out any](rf Reducer[A, Out], f func(In) Out) Reducer[A, In] {
	return Map[A](f)(rf)
}

// PostComplete returns a Reducer running f over rf's completed value, bolting
// a final transformation onto an existing reducing function.
func PostComplete[A, T any](rf Reducer[A, T], f func(A) A) Reducer[A, T] {
	return NewReducer[A, T](
		rf.Init,
		rf.Step,
		func(acc A) A { return f(rf.Complete(acc)) },
	)
}

// Fuse runs several named reducing functions over a single pass of the input
// and accumulates their results into a map keyed by name. The components are
// fanned out through Juxt in sorted name order, so stepping is deterministic;
// completing the reduction re-associates each finalised value with its name.
func Fuse[T any](named map[string]Reducer[any, T]) Reducer[map[string]any, T] {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	rfs := make([]Reducer[any, T], len(names))
	for i := range names {
		rfs[i] = named[names[i]]
	}
	juxt := Juxt(rfs...)
	byName := func(ordered []any) map[string]any {
		m := make(map[string]any, len(names))
		for i := range names {
			m[names[i]] = ordered[i]
		}
		return m
	}
	byIndex := func(m map[string]any) []any {
		ordered := make([]any, len(names))
		for i := range names {
			ordered[i] = m[names[i]]
		}
		return ordered
	}
	return NewReducer[map[string]any, T](
		func() map[string]any {
			return byName(juxt.Init())
		},
		func(acc map[string]any, input T) Step[map[string]any] {
			step := juxt.Step(byIndex(acc), input)
			if step.IsTerminated() {
				return Terminated(byName(step.Acc()))
			}
			return Continue(byName(step.Acc()))
		},
		func(acc map[string]any) map[string]any {
			return byName(juxt.Complete(byIndex(acc)))
		},
	)
}

// Package transduce implements composable transformation pipelines which are
// independent of the origin of their inputs and of the destination of their
// outputs.
//
// A transformation is expressed once as a Transducer, a function decorating a
// reducing function (Reducer), and can then be run eagerly over a Producer
// (Transduce), pulled lazily one step at a time (Eduction, Sequence) or driven
// by a pushing source with backpressure (Stream). The same pipeline value can
// be reused across any number of reductions: per-reduction state is allocated
// when the pipeline is applied to a reducing function, not when it is built.
//
// Pipelines are assembled with Compose and run left to right:
//
//	pipeline := transduce.Compose(
//		transduce.Filter[[]int](func(i int) bool { return i%2 == 1 }),
//		transduce.Map[[]int](func(i int) int { return i + 1 }),
//	)
//	evens, err := transduce.Transduce(ctx, producers.FromRange(0, 10, nil), transduce.Append[int](), pipeline)
//
// A reduction stops early when the reducing function returns a terminated
// Step, e.g. through Take; drivers then stop consuming input immediately,
// finalise the accumulator through Complete exactly once and release whatever
// the producer holds.
package transduce

package transduce

// Step is the outcome of feeding one input to a Reducer: the updated
// accumulator, optionally flagged as terminated when the reduction must not
// receive any further input.
type Step[A any] struct {
	acc        A
	terminated bool
}

// Continue returns a step carrying acc and accepting further input.
func Continue[A any](acc A) Step[A] {
	return Step[A]{acc: acc}
}

// Terminated returns a step carrying acc and signalling that the reduction
// must stop: drivers will not feed any further input and will finalise the
// carried accumulator through Complete exactly once.
func Terminated[A any](acc A) Step[A] {
	return Step[A]{acc: acc, terminated: true}
}

// EnsureTerminated flags the step as terminated. Flagging an already
// terminated step leaves it unchanged, so termination never nests.
func EnsureTerminated[A any](s Step[A]) Step[A] {
	s.terminated = true
	return s
}

// Acc returns the accumulator carried by the step.
func (s Step[A]) Acc() A {
	return s.acc
}

// IsTerminated states whether the reduction has requested an early stop.
func (s Step[A]) IsTerminated() bool {
	return s.terminated
}

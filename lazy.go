package transduce

import (
	"context"

	"github.com/go-transduce/transduce/commonerrors"
)

// Eduction is the lazy, pull-based view over a reduction: nothing is
// consumed until the consumer asks for it, and every Next call advances the
// underlying reduction by exactly one step.
//
// A reduction driven through an Eduction is single pass; to start over,
// build a new Eduction against a fresh Producer.
type Eduction[A, In any] struct {
	producer   Producer[In]
	reducer    Reducer[A, In]
	acc        A
	result     A
	err        error
	terminated bool
	done       bool
	closed     bool
}

// NewEduction builds the lazy driver for the reduction of producer through
// transducer into rf. The reducing function is seeded immediately; input is
// only consumed as the Eduction is pulled.
func NewEduction[A, In, Out any](producer Producer[In], rf Reducer[A, Out], transducer Transducer[A, In, Out]) *Eduction[A, In] {
	reducer := transducer(rf)
	return &Eduction[A, In]{
		producer: producer,
		reducer:  reducer,
		acc:      reducer.Init(),
	}
}

// Next advances the reduction by one step and returns the accumulator as it
// stands after that step, with ok set to true. Once the input is exhausted or
// the reduction has stopped early, the accumulation is finalised exactly once
// and Next returns it with ok set to false, from then on always. A producer
// failure or a cancelled context aborts the reduction without finalising and
// surfaces the error on this and every later call.
//
// An early stop never costs an extra pull: the step observing it is the last
// one to touch the producer.
func (e *Eduction[A, In]) Next(ctx context.Context) (acc A, ok bool, err error) {
	if e.closed {
		err = commonerrors.New(commonerrors.ErrContract, "eduction used after being closed")
		return
	}
	if e.err != nil {
		err = e.err
		return
	}
	if e.done {
		acc = e.result
		return
	}
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		e.err = err
		return
	}
	if e.terminated {
		e.result = e.reducer.Complete(e.acc)
		e.done = true
		acc = e.result
		return
	}
	input, more, pullErr := e.producer.Next(ctx)
	if pullErr != nil {
		e.err = pullErr
		err = pullErr
		return
	}
	if !more {
		e.result = e.reducer.Complete(e.acc)
		e.done = true
		acc = e.result
		return
	}
	step := e.reducer.Step(e.acc, input)
	e.acc = step.Acc()
	e.terminated = step.IsTerminated()
	return e.acc, true, nil
}

// Result returns the finalised accumulation and true once the reduction has
// completed, or the zero value and false before that.
func (e *Eduction[A, In]) Result() (A, bool) {
	if e.done {
		return e.result, true
	}
	var zero A
	return zero, false
}

// Close releases the producer. Closing before the reduction has completed
// abandons it: the accumulation is not finalised. Close is idempotent.
func (e *Eduction[A, In]) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.producer.Close()
}

// Sequence exposes the transformed elements themselves as a lazy Producer,
// letting a transduced stream feed a further pipeline. Elements are computed
// on demand: each Next pulls just enough input to surface the next output,
// and pending outputs produced by a single input (e.g. through Mapcat) are
// served before the producer is touched again. Outputs flushed by the
// completion phase, such as a trailing partial group from PartitionAll, are
// served once the input ends.
func Sequence[In, Out any](producer Producer[In], transducer Transducer[[]Out, In, Out]) Producer[Out] {
	buffer := NewReducer[[]Out, Out](
		func() []Out { return nil },
		func(acc []Out, output Out) Step[[]Out] {
			return Continue(append(acc, output))
		},
		nil,
	)
	return &sequenceProducer[In, Out]{
		producer: producer,
		reducer:  transducer(buffer),
	}
}

type sequenceProducer[In, Out any] struct {
	producer Producer[In]
	reducer  Reducer[[]Out, In]
	pending  []Out
	done     bool
	closed   bool
}

func (s *sequenceProducer[In, Out]) Next(ctx context.Context) (output Out, ok bool, err error) {
	for {
		if len(s.pending) > 0 {
			output = s.pending[0]
			s.pending = s.pending[1:]
			ok = true
			return
		}
		if s.done || s.closed {
			return
		}
		err = commonerrors.DetermineContextError(ctx)
		if err != nil {
			return
		}
		input, more, pullErr := s.producer.Next(ctx)
		if pullErr != nil {
			s.done = true
			err = pullErr
			return
		}
		if !more {
			s.pending = s.reducer.Complete(s.pending)
			s.done = true
			continue
		}
		step := s.reducer.Step(s.pending, input)
		s.pending = step.Acc()
		if step.IsTerminated() {
			s.pending = s.reducer.Complete(s.pending)
			s.done = true
		}
	}
}

func (s *sequenceProducer[In, Out]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.done = true
	return s.producer.Close()
}

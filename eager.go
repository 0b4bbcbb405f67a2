package transduce

import (
	"context"

	"github.com/go-transduce/transduce/commonerrors"
)

// Transduce eagerly reduces the producer's elements through the transducer
// into the reducing function and returns the completed accumulation.
//
// The reducing function is seeded once, stepped once per element and
// finalised exactly once, whether the input ran out or the reduction stopped
// early; after an early stop the producer is not pulled again. Cancelling the
// context aborts the reduction with the corresponding error and without
// finalising. The producer is closed on every path; a panic raised by user
// supplied logic propagates to the caller after the producer has been closed.
func Transduce[A, In, Out any](ctx context.Context, producer Producer[In], rf Reducer[A, Out], transducer Transducer[A, In, Out]) (result A, err error) {
	if producer == nil {
		err = commonerrors.UndefinedParameter("producer")
		return
	}
	if rf == nil {
		err = commonerrors.UndefinedParameter("reducing function")
		return
	}
	if transducer == nil {
		err = commonerrors.UndefinedParameter("transducer")
		return
	}
	defer func() {
		if closeErr := producer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	reducer := transducer(rf)
	acc := reducer.Init()
	for {
		err = commonerrors.DetermineContextError(ctx)
		if err != nil {
			return
		}
		input, ok, pullErr := producer.Next(ctx)
		if pullErr != nil {
			err = pullErr
			return
		}
		if !ok {
			break
		}
		step := reducer.Step(acc, input)
		acc = step.Acc()
		if step.IsTerminated() {
			break
		}
	}
	result = reducer.Complete(acc)
	return
}

// Reduce is Transduce without a transformation stage.
func Reduce[A, T any](ctx context.Context, producer Producer[T], rf Reducer[A, T]) (A, error) {
	return Transduce(ctx, producer, rf, Identity[A, T]())
}

// Into collects the transformed elements into a slice.
func Into[In, Out any](ctx context.Context, producer Producer[In], transducer Transducer[[]Out, In, Out]) ([]Out, error) {
	return Transduce(ctx, producer, Append[Out](), transducer)
}

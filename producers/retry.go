package producers

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/go-transduce/transduce"
	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/config"
)

// WithRetry wraps a producer so that failing pulls are retried according to
// the options provided (attempts, delays, backoff). Cancellations, timeouts
// and end of stream conditions are never retried. Retrying happens at the
// source boundary only: a retried pull is invisible to the reduction, which
// sees either the value eventually produced or the final error.
func WithRetry[T any](producer transduce.Producer[T], opts ...retry.Option) transduce.Producer[T] {
	return &retryProducer[T]{producer: producer, opts: opts}
}

// WithRetryPolicy wraps a producer so that failing pulls are retried as the
// policy describes, each retry being recorded by the logger. A disabled
// policy returns the producer untouched.
func WithRetryPolicy[T any](producer transduce.Producer[T], logger logr.Logger, retryPolicy *config.RetryPolicyConfiguration) (transduce.Producer[T], error) {
	if retryPolicy == nil {
		return nil, commonerrors.UndefinedParameter("retry policy configuration")
	}
	err := retryPolicy.Validate()
	if err != nil {
		return nil, err
	}
	if !retryPolicy.Enabled {
		return producer, nil
	}
	var retryType retry.DelayTypeFunc
	switch {
	case retryPolicy.LinearBackOffEnabled:
		retryType = retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)
	case retryPolicy.BackOffEnabled:
		retryType = retry.BackOffDelay
	default:
		retryType = retry.FixedDelay
	}
	attempts := retryPolicy.RetryMax
	if attempts < 0 {
		attempts = 0
	}
	return WithRetry[T](producer,
		retry.OnRetry(func(n uint, err error) {
			logger.Error(err, fmt.Sprintf("failed to pull the next element (attempt #%v)", n+1), "attempt", n+1)
		}),
		retry.Delay(retryPolicy.RetryWaitMin),
		retry.MaxDelay(retryPolicy.RetryWaitMax),
		retry.MaxJitter(25*time.Millisecond),
		retry.DelayType(retryType),
		retry.Attempts(uint(attempts)),
	), nil
}

type retryProducer[T any] struct {
	producer transduce.Producer[T]
	opts     []retry.Option
}

type pull[T any] struct {
	value T
	ok    bool
}

func (p *retryProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	if p.producer == nil {
		err = commonerrors.UndefinedVariable("producer")
		return
	}
	result, err := retry.DoWithData(func() (pull[T], error) {
		element, more, pullErr := p.producer.Next(ctx)
		return pull[T]{value: element, ok: more}, pullErr
	}, p.options(ctx)...)
	if err != nil {
		err = commonerrors.ConvertContextError(err)
		return
	}
	return result.value, result.ok, nil
}

func (p *retryProducer[T]) options(ctx context.Context) []retry.Option {
	defaults := []retry.Option{
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return commonerrors.None(err, commonerrors.ErrCancelled, commonerrors.ErrTimeout, commonerrors.ErrEOF, commonerrors.ErrContract)
		}),
	}
	return append(defaults, p.opts...)
}

func (p *retryProducer[T]) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

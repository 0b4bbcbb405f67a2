package producers

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/sasha-s/go-deadlock"

	"github.com/go-transduce/transduce"
	"github.com/go-transduce/transduce/commonerrors"
)

// Concat returns a producer yielding the elements of each producer in turn,
// moving on as each one is exhausted. Closing it closes every underlying
// producer and aggregates their close errors.
func Concat[T any](producers ...transduce.Producer[T]) transduce.Producer[T] {
	return &concatProducer[T]{producers: producers}
}

type concatProducer[T any] struct {
	mu        deadlock.Mutex
	producers []transduce.Producer[T]
	index     int
	closed    bool
}

func (p *concatProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	for p.index < len(p.producers) {
		value, ok, err = p.producers[p.index].Next(ctx)
		if err != nil || ok {
			return
		}
		p.index++
	}
	return
}

func (p *concatProducer[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var result *multierror.Error
	for i := range p.producers {
		result = multierror.Append(result, p.producers[i].Close())
	}
	return result.ErrorOrNil()
}

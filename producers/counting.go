package producers

import (
	"context"

	"go.uber.org/atomic"

	"github.com/go-transduce/transduce"
)

// CountingProducer wraps a producer and counts pulls and closes, so that the
// exact consumption of a reduction can be asserted on.
type CountingProducer[T any] struct {
	producer transduce.Producer[T]
	pulls    atomic.Int64
	closes   atomic.Int64
}

// NewCounting instruments the producer provided.
func NewCounting[T any](producer transduce.Producer[T]) *CountingProducer[T] {
	return &CountingProducer[T]{producer: producer}
}

func (p *CountingProducer[T]) Next(ctx context.Context) (T, bool, error) {
	p.pulls.Inc()
	return p.producer.Next(ctx)
}

func (p *CountingProducer[T]) Close() error {
	p.closes.Inc()
	return p.producer.Close()
}

// Pulls returns how many times Next has been called.
func (p *CountingProducer[T]) Pulls() int64 {
	return p.pulls.Load()
}

// Closes returns how many times Close has been called.
func (p *CountingProducer[T]) Closes() int64 {
	return p.closes.Load()
}

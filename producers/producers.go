// Package producers supplies ready-made element sources for reductions:
// slices, go iterators, channels, integer ranges and generator functions,
// together with wrappers adding retries, instrumentation and concatenation.
package producers

import (
	"context"
	"io"
	"iter"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/go-transduce/transduce"
	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/field"
)

// FromSlice returns a producer yielding the elements of a slice in order.
func FromSlice[T any](elements []T) transduce.Producer[T] {
	return &sliceProducer[T]{elements: elements}
}

// Empty returns a producer yielding nothing.
func Empty[T any]() transduce.Producer[T] {
	return FromSlice[T](nil)
}

type sliceProducer[T any] struct {
	elements []T
	index    int
	closed   atomic.Bool
}

func (p *sliceProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if p.closed.Load() || p.index >= len(p.elements) {
		return
	}
	value = p.elements[p.index]
	p.index++
	ok = true
	return
}

func (p *sliceProducer[T]) Close() error {
	p.closed.Store(true)
	return nil
}

// FromSeq returns a producer yielding the values of a go iterator.
func FromSeq[T any](sequence iter.Seq[T]) transduce.Producer[T] {
	next, stop := iter.Pull(sequence)
	return &seqProducer[T]{next: next, stop: stop}
}

type seqProducer[T any] struct {
	next   func() (T, bool)
	stop   func()
	closed atomic.Bool
}

func (p *seqProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if p.closed.Load() {
		return
	}
	value, ok = p.next()
	return
}

func (p *seqProducer[T]) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		p.stop()
	}
	return nil
}

// FromChannel returns a producer yielding the values received from a channel
// until the channel is closed. A pull blocks until a value arrives or the
// context is done.
func FromChannel[T any](source <-chan T) transduce.Producer[T] {
	return &channelProducer[T]{source: source}
}

type channelProducer[T any] struct {
	source <-chan T
	closed atomic.Bool
}

func (p *channelProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	if p.closed.Load() {
		return
	}
	select {
	case value, ok = <-p.source:
		return
	case <-ctx.Done():
		err = commonerrors.ConvertContextError(ctx.Err())
		return
	}
}

func (p *channelProducer[T]) Close() error {
	p.closed.Store(true)
	return nil
}

// FromRange returns a producer yielding integers similarly to python's
// built-in range() i.e. from start towards stop, stop excluded, moving by
// step which defaults to 1 when not provided. A range going nowhere yields
// nothing.
func FromRange(start, stop int, step *int) transduce.Producer[int] {
	return &rangeProducer{next: start, stop: stop, step: field.OptionalInt(step, 1)}
}

type rangeProducer struct {
	next, stop, step int
	closed           atomic.Bool
}

func (p *rangeProducer) Next(ctx context.Context) (value int, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if p.closed.Load() || p.step == 0 {
		return
	}
	if (p.step > 0 && p.next >= p.stop) || (p.step < 0 && p.next <= p.stop) {
		return
	}
	value = p.next
	ok = true
	p.next += p.step
	return
}

func (p *rangeProducer) Close() error {
	p.closed.Store(true)
	return nil
}

// Generate returns a producer yielding elements by calling generate until it
// reports no further elements or fails. Returning io.EOF or ErrEOF counts as
// natural exhaustion rather than a failure.
func Generate[T any](generate func(ctx context.Context) (T, bool, error)) transduce.Producer[T] {
	return &generateProducer[T]{generate: generate}
}

type generateProducer[T any] struct {
	mu       deadlock.Mutex
	generate func(ctx context.Context) (T, bool, error)
	closed   bool
}

func (p *generateProducer[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.generate == nil {
		return
	}
	value, ok, err = p.generate(ctx)
	if err != nil {
		ok = false
		err = commonerrors.Ignore(err, io.EOF, commonerrors.ErrEOF)
	}
	return
}

func (p *generateProducer[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Repeat returns a producer yielding the same value count times.
func Repeat[T any](value T, count int) transduce.Producer[T] {
	remaining := count
	return Generate(func(context.Context) (repeated T, ok bool, err error) {
		if remaining <= 0 {
			return
		}
		remaining--
		return value, true, nil
	})
}

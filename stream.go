package transduce

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/field"
	"github.com/go-transduce/transduce/idgen"
	"github.com/go-transduce/transduce/logs"
)

// StreamOption tunes the streaming driver.
type StreamOption func(settings *streamSettings)

// WithChannelCapacity sets the size of the buffer between the feeding
// goroutine and the reduction. The default capacity is 1.
func WithChannelCapacity(capacity int) StreamOption {
	return func(settings *streamSettings) {
		settings.capacity = capacity
	}
}

// WithEmitTimeout bounds how long emit may stay blocked on a full buffer
// before the reduction is failed with ErrBackpressure. Without it, emit
// blocks for as long as the reduction needs.
func WithEmitTimeout(timeout time.Duration) StreamOption {
	return func(settings *streamSettings) {
		settings.emitTimeout = field.ToOptionalDuration(timeout)
	}
}

// WithPartialOnError makes a failing Stream return the running accumulator
// as it stood, not finalised, alongside the error. By default the
// accumulator is discarded on failure.
func WithPartialOnError() StreamOption {
	return func(settings *streamSettings) {
		settings.keepPartial = true
	}
}

// WithLogger sets the logger recording the lifecycle of the reduction. The
// default logger discards everything.
func WithLogger(logger logr.Logger) StreamOption {
	return func(settings *streamSettings) {
		settings.logger = logger
	}
}

type streamSettings struct {
	capacity    int
	emitTimeout *time.Duration
	keepPartial bool
	logger      logr.Logger
}

func newStreamSettings(opts ...StreamOption) *streamSettings {
	settings := &streamSettings{
		capacity: 1,
		logger:   logs.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(settings)
	}
	return settings
}

func (s *streamSettings) validate() error {
	if s.capacity < 1 {
		return commonerrors.Newf(commonerrors.ErrInvalid, "channel capacity [%v] must be at least 1", s.capacity)
	}
	if s.emitTimeout != nil && *s.emitTimeout <= 0 {
		return commonerrors.Newf(commonerrors.ErrInvalid, "emit timeout [%v] must be strictly positive", *s.emitTimeout)
	}
	return nil
}

// Stream drives the reduction from a pushing source. The feed function runs
// in its own goroutine and hands elements over through emit; the elements
// cross a bounded buffer and are reduced in order of emission.
//
// emit blocks while the buffer is full, which is how backpressure reaches
// the source, and must only be called from the feed function before it
// returns. When emit returns an error the reduction can no longer accept
// input and the feed is expected to stop and return that error.
//
// The reduction ends when the feed returns (the accumulation is then
// finalised), when the reducing function stops early (the feed's context is
// cancelled at once, the feed is waited for and the accumulation is
// finalised), when the feed fails, or when ctx is cancelled; the last two
// abort the reduction without finalising. A panic raised by user supplied
// logic propagates to the caller with the feed's context cancelled on the
// way out.
func Stream[A, In, Out any](ctx context.Context, feed func(ctx context.Context, emit func(In) error) error, rf Reducer[A, Out], transducer Transducer[A, In, Out], opts ...StreamOption) (result A, err error) {
	if feed == nil {
		err = commonerrors.UndefinedParameter("feed")
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
	settings := newStreamSettings(opts...)
	err = settings.validate()
	if err != nil {
		return
	}
	logger := settings.logger
	if id, idErr := idgen.GenerateUUID4(); idErr == nil {
		logger = logger.WithValues("reduction", id)
	}

	reducer := transducer(rf)
	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()
	buffer := make(chan In, settings.capacity)
	group, groupCtx := errgroup.WithContext(feedCtx)
	emit := func(input In) error {
		if settings.emitTimeout == nil {
			select {
			case buffer <- input:
				return nil
			case <-groupCtx.Done():
				return commonerrors.ConvertContextError(groupCtx.Err())
			}
		}
		timer := time.NewTimer(*settings.emitTimeout)
		defer timer.Stop()
		select {
		case buffer <- input:
			return nil
		case <-groupCtx.Done():
			return commonerrors.ConvertContextError(groupCtx.Err())
		case <-timer.C:
			return commonerrors.Newf(commonerrors.ErrBackpressure, "no buffer capacity within %v", *settings.emitTimeout)
		}
	}
	group.Go(func() error {
		defer close(buffer)
		return feed(groupCtx, emit)
	})

	logger.V(1).Info("reduction started", "capacity", settings.capacity)
	acc := reducer.Init()
	terminated := false
receive:
	for {
		select {
		case input, open := <-buffer:
			if !open {
				break receive
			}
			step := reducer.Step(acc, input)
			acc = step.Acc()
			if step.IsTerminated() {
				terminated = true
				stopFeed()
				break receive
			}
		case <-ctx.Done():
			err = commonerrors.ConvertContextError(ctx.Err())
			break receive
		}
	}

	feedErr := group.Wait()
	if err == nil && !terminated {
		err = feedErr
	}
	if err != nil {
		logger.Error(err, "reduction failed")
		if settings.keepPartial {
			result = acc
		}
		return
	}
	if terminated {
		logger.V(1).Info("reduction stopped early")
	}
	result = reducer.Complete(acc)
	logger.V(1).Info("reduction completed")
	return
}

// StreamChannel drives the reduction from an existing channel, treating
// channel closure as the natural end of the input.
func StreamChannel[A, In, Out any](ctx context.Context, source <-chan In, rf Reducer[A, Out], transducer Transducer[A, In, Out], opts ...StreamOption) (A, error) {
	if source == nil {
		var zero A
		return zero, commonerrors.UndefinedParameter("source channel")
	}
	return Stream(ctx, func(ctx context.Context, emit func(In) error) error {
		for {
			select {
			case input, open := <-source:
				if !open {
					return nil
				}
				if err := emit(input); err != nil {
					return err
				}
			case <-ctx.Done():
				return commonerrors.ConvertContextError(ctx.Err())
			}
		}
	}, rf, transducer, opts...)
}

package transduce

import (
	"context"

	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/config"
)

// Run reduces the producer through the transducer into the reducing function
// with the driver named by the configuration: eagerly, lazily (drained to
// completion) or through the streaming driver with the producer bridged over
// the configured buffer. A nil configuration runs eagerly. Options are only
// read by the streaming driver and take precedence over the configuration.
func Run[A, In, Out any](ctx context.Context, cfg *config.TransductionConfiguration, producer Producer[In], rf Reducer[A, Out], transducer Transducer[A, In, Out], opts ...StreamOption) (result A, err error) {
	if producer == nil {
		err = commonerrors.UndefinedParameter("producer")
		return
	}
	if cfg == nil {
		cfg = config.DefaultTransductionConfiguration()
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	switch cfg.Mode {
	case config.ModeEager:
		return Transduce(ctx, producer, rf, transducer)
	case config.ModeLazy:
		return drain(ctx, NewEduction(producer, rf, transducer))
	case config.ModeStreaming:
		return streamFromProducer(ctx, cfg, producer, rf, transducer, opts...)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "unknown transduction mode [%v]", cfg.Mode)
		return
	}
}

// drain pulls an eduction to completion.
func drain[A, In any](ctx context.Context, eduction *Eduction[A, In]) (result A, err error) {
	defer func() {
		if closeErr := eduction.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	for {
		acc, ok, nextErr := eduction.Next(ctx)
		if nextErr != nil {
			err = nextErr
			return
		}
		if !ok {
			result = acc
			return
		}
	}
}

// streamFromProducer bridges a pull producer into the streaming driver.
func streamFromProducer[A, In, Out any](ctx context.Context, cfg *config.TransductionConfiguration, producer Producer[In], rf Reducer[A, Out], transducer Transducer[A, In, Out], opts ...StreamOption) (result A, err error) {
	defer func() {
		if closeErr := producer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	streamOpts := []StreamOption{WithChannelCapacity(cfg.ChannelCapacity)}
	if cfg.EmitTimeout > 0 {
		streamOpts = append(streamOpts, WithEmitTimeout(cfg.EmitTimeout))
	}
	if cfg.KeepPartial {
		streamOpts = append(streamOpts, WithPartialOnError())
	}
	streamOpts = append(streamOpts, opts...)
	return Stream(ctx, func(ctx context.Context, emit func(In) error) error {
		for {
			cerr := commonerrors.DetermineContextError(ctx)
			if cerr != nil {
				return cerr
			}
			input, ok, pullErr := producer.Next(ctx)
			if pullErr != nil {
				return pullErr
			}
			if !ok {
				return nil
			}
			emitErr := emit(input)
			if emitErr != nil {
				return emitErr
			}
		}
	}, rf, transducer, streamOpts...)
}

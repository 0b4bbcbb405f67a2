// Package config describes how a reduction is to be driven and loads that
// description from the environment.
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	configvalidation "github.com/go-transduce/transduce/config/validation"
)

const (
	// ModeEager runs the reduction to completion in the calling goroutine.
	ModeEager = "eager"
	// ModeLazy advances the reduction step by step as the caller pulls it.
	ModeLazy = "lazy"
	// ModeStreaming drives the reduction from a feeding goroutine through a
	// bounded buffer.
	ModeStreaming = "streaming"
)

// TransductionConfiguration selects and tunes the driver running a
// reduction.
type TransductionConfiguration struct {
	// Mode states which driver runs the reduction: eager, lazy or streaming.
	Mode string `mapstructure:"mode"`
	// ChannelCapacity sizes the buffer between the feeding goroutine and the
	// reduction. Only the streaming driver reads it.
	ChannelCapacity int `mapstructure:"channel_capacity"`
	// EmitTimeout bounds how long the feeding goroutine may stay blocked on
	// a full buffer before the reduction fails with a backpressure error.
	// Zero means no bound. Only the streaming driver reads it.
	EmitTimeout time.Duration `mapstructure:"emit_timeout"`
	// KeepPartial makes a failing streaming reduction return the running
	// accumulator alongside the error instead of discarding it.
	KeepPartial bool `mapstructure:"keep_partial"`
}

func (cfg *TransductionConfiguration) Validate() error {
	return ConvertValidationError(validation.ValidateStruct(cfg,
		validation.Field(&cfg.Mode, validation.Required, validation.In(ModeEager, ModeLazy, ModeStreaming)),
		validation.Field(&cfg.ChannelCapacity, validation.Required, validation.Min(1)),
		validation.Field(&cfg.EmitTimeout, configvalidation.IsNonNegativeDuration()),
	))
}

// DefaultTransductionConfiguration returns the configuration of a plain
// eager reduction.
func DefaultTransductionConfiguration() *TransductionConfiguration {
	return &TransductionConfiguration{
		Mode:            ModeEager,
		ChannelCapacity: 1,
	}
}

// DefaultStreamingConfiguration returns the configuration of a streaming
// reduction with the capacity provided.
func DefaultStreamingConfiguration(capacity int) *TransductionConfiguration {
	return &TransductionConfiguration{
		Mode:            ModeStreaming,
		ChannelCapacity: capacity,
	}
}

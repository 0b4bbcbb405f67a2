package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"

	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/commonerrors/errortest"
)

func TestTransductionConfigurationValidate(t *testing.T) {
	tests := []struct {
		configuration TransductionConfiguration
		valid         bool
	}{
		{configuration: *DefaultTransductionConfiguration(), valid: true},
		{configuration: *DefaultStreamingConfiguration(16), valid: true},
		{configuration: TransductionConfiguration{Mode: ModeLazy, ChannelCapacity: 1}, valid: true},
		{configuration: TransductionConfiguration{Mode: ModeStreaming, ChannelCapacity: 8, EmitTimeout: time.Second}, valid: true},
		{configuration: TransductionConfiguration{Mode: fmt.Sprintf("mode-%v", faker.Word()), ChannelCapacity: 1}, valid: false},
		{configuration: TransductionConfiguration{ChannelCapacity: 1}, valid: false},
		{configuration: TransductionConfiguration{Mode: ModeStreaming}, valid: false},
		{configuration: TransductionConfiguration{Mode: ModeEager, ChannelCapacity: 1, EmitTimeout: -time.Second}, valid: false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("test_%v", i), func(t *testing.T) {
			err := test.configuration.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				errortest.AssertError(t, err, commonerrors.ErrInvalid)
			}
		})
	}
}

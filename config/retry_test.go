package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/commonerrors/errortest"
)

func TestNoRetryConfiguration(t *testing.T) {
	configTest := DefaultNoRetryPolicyConfiguration()
	require.NoError(t, configTest.Validate())
}

func TestBasicRetryConfiguration(t *testing.T) {
	configTest := DefaultBasicRetryPolicyConfiguration()
	require.NoError(t, configTest.Validate())
}

func TestExponentialBackoffRetryConfiguration(t *testing.T) {
	configTest := DefaultExponentialBackoffRetryPolicyConfiguration()
	require.NoError(t, configTest.Validate())
}

func TestLinearBackoffRetryConfiguration(t *testing.T) {
	configTest := DefaultLinearBackoffRetryPolicyConfiguration()
	require.NoError(t, configTest.Validate())
}

func TestInvalidRetryConfiguration(t *testing.T) {
	configTest := &RetryPolicyConfiguration{
		Enabled:      true,
		RetryMax:     4,
		RetryWaitMin: -time.Second,
	}
	errortest.AssertError(t, configTest.Validate(), commonerrors.ErrInvalid)

	// Backoff without an enabled policy makes no sense.
	configTest = &RetryPolicyConfiguration{
		BackOffEnabled: true,
		RetryMax:       4,
		RetryWaitMax:   time.Second,
	}
	errortest.AssertError(t, configTest.Validate(), commonerrors.ErrInvalid)
}

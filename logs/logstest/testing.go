// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
)

// NewTestLogger returns a logger recording entries through the test runner.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

// NewTestLoggerWithVerbosity returns a test logger showing entries up to the
// verbosity provided.
func NewTestLoggerWithVerbosity(t *testing.T, verbosity int) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: verbosity})
}

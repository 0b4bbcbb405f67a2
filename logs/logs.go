// Package logs defines common logr implementations.
package logs

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

// NewNoopLogger returns a logger discarding everything.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

// NewStdLogger returns a logger backed by the standard library's log package.
func NewStdLogger(std *log.Logger) logr.Logger {
	return stdr.New(std)
}

// NewStdOutLogger returns a logger to standard output.
func NewStdOutLogger() logr.Logger {
	return NewStdLogger(log.New(os.Stdout, "", log.LstdFlags))
}

// NewZapLogger returns a new zap logger
func NewZapLogger(logger *zap.Logger) logr.Logger {
	return zapr.NewLogger(logger)
}

// NewJSONLogger returns a logger writing entries to writer as JSON objects
// tagged with a timestamp and the source provided.
func NewJSONLogger(writer io.Writer, source string) logr.Logger {
	zerologger := zerolog.New(writer).With().Timestamp().Str("source", source).Logger()
	return logr.New(&zerologSink{logger: zerologger})
}

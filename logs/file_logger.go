package logs

import (
	"io"
	"time"

	"github.com/DeRuina/timberjack"
	"github.com/go-logr/logr"

	"github.com/go-transduce/transduce/commonerrors"
	"github.com/go-transduce/transduce/value"
)

// FileLoggerOption tunes the rotation of a file logger.
type FileLoggerOption func(settings *fileLoggerSettings)

// WithMaxFileSize sets the size in megabytes at which the log file is
// rotated.
func WithMaxFileSize(megabytes int) FileLoggerOption {
	return func(settings *fileLoggerSettings) {
		settings.maxFileSize = megabytes
	}
}

// WithMaxAge sets how long rotated files are retained for. Retention is
// rounded down to whole days.
func WithMaxAge(maxAge time.Duration) FileLoggerOption {
	return func(settings *fileLoggerSettings) {
		settings.maxAge = maxAge
	}
}

// WithMaxBackups sets the number of rotated files to retain.
func WithMaxBackups(maxBackups int) FileLoggerOption {
	return func(settings *fileLoggerSettings) {
		settings.maxBackups = maxBackups
	}
}

type fileLoggerSettings struct {
	maxFileSize int
	maxAge      time.Duration
	maxBackups  int
}

// NewRollingFileLogger returns a logger writing JSON entries tagged with
// source to the file at path, rotating the file as it grows. The returned
// closer releases the file.
func NewRollingFileLogger(path string, source string, options ...FileLoggerOption) (logger logr.Logger, closer io.Closer, err error) {
	if value.IsEmpty(path) {
		err = commonerrors.UndefinedParameter("log file destination")
		return
	}
	settings := &fileLoggerSettings{
		maxFileSize: 100,
		maxAge:      24 * time.Hour,
		maxBackups:  3,
	}
	for _, option := range options {
		option(settings)
	}
	writer := &timberjack.Logger{
		Filename:   path,
		MaxSize:    settings.maxFileSize,
		MaxAge:     int(settings.maxAge.Hours() / 24),
		MaxBackups: settings.maxBackups,
		LocalTime:  false,
		Compress:   false,
	}
	return NewJSONLogger(writer, source), writer, nil
}

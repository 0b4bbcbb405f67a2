package logs

import (
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

// zerologSink adapts a zerolog logger to logr's LogSink interface so that
// JSON structured logging can be plugged in wherever a logr.Logger is
// expected.
type zerologSink struct {
	logger zerolog.Logger
	name   string
}

func (s *zerologSink) Init(_ logr.RuntimeInfo) {
	// Call depth is not tracked.
}

func (s *zerologSink) Enabled(_ int) bool {
	return true
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...any) {
	event := s.logger.Info()
	if level > 0 {
		event = s.logger.Debug()
	}
	s.send(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...any) {
	s.send(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...any) logr.LogSink {
	logger := s.logger.With()
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		logger = logger.Interface(key, keysAndValues[i+1])
	}
	return &zerologSink{logger: logger.Logger(), name: s.name}
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	qualified := name
	if s.name != "" {
		qualified = s.name + "/" + name
	}
	return &zerologSink{logger: s.logger, name: qualified}
}

func (s *zerologSink) send(event *zerolog.Event, msg string, keysAndValues []any) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	event.Msg(msg)
}

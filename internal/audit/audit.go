// Package audit records security- and state-relevant actions to one or more
// sinks. The logger is an injected handle with an explicit lifecycle rather
// than ambient global state, so tests can substitute an in-memory sink and
// assert on emitted events.
package audit

import (
	"path/filepath"
	"time"
)

// Sink receives emitted events. Implementations decide which levels they keep.
type Sink interface {
	Write(e Event) error
	Close() error
}

// Config describes the sink set for a production logger.
type Config struct {
	// Dir is the directory holding the durable log files. Created if missing.
	Dir string
	// Service tags every event with the emitting service name.
	Service string
	// Console adds a human-readable styled sink; enabled outside production.
	Console bool
}

// Logger fans events out to its sinks. Delivery is best-effort and at most
// once: a sink failure never propagates to the request path.
type Logger struct {
	service string
	sinks   []Sink
}

// New opens the durable sinks: error.log captures only error-level events,
// combined.log captures everything. With cfg.Console set, events are also
// printed with per-level styling.
func New(cfg Config) (*Logger, error) {
	errSink, err := NewFileSink(filepath.Join(cfg.Dir, "error.log"), LevelError)
	if err != nil {
		return nil, err
	}
	allSink, err := NewFileSink(filepath.Join(cfg.Dir, "combined.log"), LevelInfo)
	if err != nil {
		errSink.Close()
		return nil, err
	}

	sinks := []Sink{errSink, allSink}
	if cfg.Console {
		sinks = append(sinks, NewConsoleSink())
	}
	return &Logger{service: cfg.Service, sinks: sinks}, nil
}

// NewWithSinks builds a logger over caller-supplied sinks. Tests use this with
// a MemorySink.
func NewWithSinks(service string, sinks ...Sink) *Logger {
	return &Logger{service: service, sinks: sinks}
}

// Info records a routine event.
func (l *Logger) Info(message string, meta map[string]any) {
	l.emit(LevelInfo, message, meta)
}

// Warn records a suspicious or destructive event that should draw attention.
func (l *Logger) Warn(message string, meta map[string]any) {
	l.emit(LevelWarn, message, meta)
}

// Error records a failure. Meta should carry identifying parameters, never
// full payload contents or credentials.
func (l *Logger) Error(message string, meta map[string]any) {
	l.emit(LevelError, message, meta)
}

func (l *Logger) emit(level Level, message string, meta map[string]any) {
	e := Event{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Service:   l.service,
		Meta:      meta,
	}
	for _, s := range l.sinks {
		// Sink I/O failures are swallowed: a logging failure must not fail
		// the HTTP request.
		_ = s.Write(e)
	}
}

// Close flushes and closes all sinks, best-effort.
func (l *Logger) Close() {
	for _, s := range l.sinks {
		_ = s.Close()
	}
}

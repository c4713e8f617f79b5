// Package logging writes structured JSON log lines through zap.
package logging

import (
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(newProduction())
}

func newProduction() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.Sampling = nil
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the sink and returns a function restoring the previous one.
func SetLogger(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}
	prev := current.Swap(l)
	return func() { current.Store(prev) }
}

// Sync flushes buffered entries.
func Sync() { _ = current.Load().Sync() }

func toZap(fields Fields, err error) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	current.Load().Info(msg, toZap(fields, nil)...)
}

// Warn logs a recoverable problem.
func Warn(msg string, fields Fields) {
	current.Load().Warn(msg, toZap(fields, nil)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	current.Load().Error(msg, toZap(fields, err)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	current.Load().Fatal(msg, toZap(fields, err)...)
}

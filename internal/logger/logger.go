// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the dailydoit server.
//
// Every entry carries the process role, a timestamp and the calling
// function. Request handlers and everything below them log through the
// request-scoped logger returned by FromContext or FromRequest, which the
// trace-id middleware enriches with a trace_id field.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the name of the field holding the request trace id.
const TraceIDField = "trace_id"

// Logger embeds zerolog.Logger, so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout with a "role" field
// (for example "dailydoit-server"). The global level starts at Debug until
// ForDeployment is applied.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// ForDeployment sets the global level for the deployment. Development keeps
// debug entries and prints them with the console writer, production logs
// Info and above as JSON.
func (l *Logger) ForDeployment(dev bool) *Logger {
	if !dev {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return l
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return &Logger{l.Output(zerolog.ConsoleWriter{Out: os.Stdout})}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagging every entry with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with WithContext. Without
// one, zerolog hands back its disabled logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

package logger

import (
	"context"
)

// Reporter receives errors that cannot be returned to a caller, such as
// failures of fire-and-forget email deliveries or internal server errors
// already answered with a generic page.
type Reporter interface {
	Report(ctx context.Context, err error, msg string)
}

// LogReporter forwards reported errors to the request-scoped logger with a
// "reported" marker so they can be picked up by log-based alerting.
type LogReporter struct{}

// NewReporter returns the log-backed error reporter.
func NewReporter() *LogReporter {
	return &LogReporter{}
}

// Report logs err at error level using the logger attached to ctx, which
// carries the trace_id of the originating request when there is one.
func (LogReporter) Report(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	FromContext(ctx).Error().
		Err(err).
		Bool("reported", true).
		Msg(msg)
}

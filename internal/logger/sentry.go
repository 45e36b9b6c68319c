package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/getsentry/sentry-go"
)

// SentryReporter sends reported errors to Sentry and also logs them like
// [LogReporter], so log-based alerting keeps working.
type SentryReporter struct {
	hub *sentry.Hub
	log LogReporter
}

// NewSentryReporter creates a Sentry client from opts. Events carry the
// trace_id of the request they were reported from.
func NewSentryReporter(opts sentry.ClientOptions) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("error creating sentry client: %w", err)
	}

	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report implements [Reporter].
func (s *SentryReporter) Report(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	s.log.Report(ctx, err, msg)

	hub := s.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("report", msg)
		if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
			scope.SetTag(TraceIDField, traceID)
		}
		hub.CaptureException(err)
	})
}

// Flush waits up to timeout for queued events to be delivered.
func (s *SentryReporter) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

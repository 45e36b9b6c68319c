// Package metrics declares the Prometheus collectors of the server.
//
// Collectors are created at package initialization so they can be used
// before (or without) registration; [InitCustomMetrics] registers them once
// at startup.
package metrics

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values shared by the auth counters.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultExpired  = "expired"
)

var (
	SignUpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_signups_total",
		Help: "Total number of sign-up attempts by result.",
	}, []string{"result"})

	SignInsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_signins_total",
		Help: "Total number of sign-in attempts by strategy and result.",
	}, []string{"strategy", "result"})

	ActivationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_activations_total",
		Help: "Total number of account activation attempts by result.",
	}, []string{"result"})

	FederatedUsersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dailydoit_federated_users_created_total",
		Help: "Total number of accounts provisioned through a federated provider.",
	})

	NotificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_notifications_total",
		Help: "Total number of outgoing emails by kind and result.",
	}, []string{"kind", "result"})

	DaysChangedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_days_changed_total",
		Help: "Total number of calendar days marked or unmarked.",
	}, []string{"action"})

	SessionsPrunedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dailydoit_sessions_pruned_total",
		Help: "Total number of expired sessions deleted by the pruner.",
	})

	RateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_rate_limited_total",
		Help: "Total number of requests rejected by a rate limiter.",
	}, []string{"limiter"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dailydoit_http_requests_total",
		Help: "Total number of HTTP requests by method and status code.",
	}, []string{"method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dailydoit_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// InitCustomMetrics registers the collectors with reg. It should be called
// once at application startup. Registration failures are logged and do not
// stop the server.
func InitCustomMetrics(reg prometheus.Registerer, log *logger.Logger) {
	if reg == nil {
		log.Error().Msg("prometheus registry is nil, cannot register custom metrics")
		return
	}

	collectors := map[string]prometheus.Collector{
		"SignUpsTotal":               SignUpsTotal,
		"SignInsTotal":               SignInsTotal,
		"ActivationsTotal":           ActivationsTotal,
		"FederatedUsersCreatedTotal": FederatedUsersCreatedTotal,
		"NotificationsTotal":         NotificationsTotal,
		"DaysChangedTotal":           DaysChangedTotal,
		"SessionsPrunedTotal":        SessionsPrunedTotal,
		"RateLimitedTotal":           RateLimitedTotal,
		"HTTPRequestsTotal":          HTTPRequestsTotal,
		"HTTPRequestDuration":        HTTPRequestDuration,
	}
	for name, c := range collectors {
		if err := reg.Register(c); err != nil {
			log.Warn().Err(err).Str("metric", name).Msg("failed to register metric")
		}
	}

	log.Info().Msg("custom prometheus metrics registered")
}

// Handler serves the metrics gathered by g in the OpenMetrics format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

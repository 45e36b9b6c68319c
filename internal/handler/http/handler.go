package http

import (
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves every HTTP route of the application.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	csrf     crypto.CSRFTokens
	views    *views

	gatherer prometheus.Gatherer
	reporter logger.Reporter
	traceIDs *utils.UUIDGenerator

	signInLimiter *rateLimiter
	signUpLimiter *rateLimiter

	baseURL string
	dev     bool
	now     func() time.Time

	logger *logger.Logger
}

// NewHandler constructs the Handler. Close must be called to stop the rate
// limiter janitors.
func NewHandler(
	services *service.Services,
	sessions *session.Manager,
	gatherer prometheus.Gatherer,
	reporter logger.Reporter,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	dev := cfg.IsDev()

	logger.Info().Bool("dev", dev).Msg("http handler created")
	return &Handler{
		services:      services,
		sessions:      sessions,
		csrf:          crypto.NewCSRFTokens(),
		views:         mustParseViews(),
		gatherer:      gatherer,
		reporter:      reporter,
		traceIDs:      utils.NewUUIDGenerator(),
		signInLimiter: newRateLimiter("signin", cfg.Auth.SignInLimit, cfg.Auth.RateLimitWindow, dev),
		signUpLimiter: newRateLimiter("signup", cfg.Auth.SignUpLimit, cfg.Auth.RateLimitWindow, dev),
		baseURL:       cfg.App.BaseURL,
		dev:           dev,
		now:           time.Now,
		logger:        logger,
	}
}

// Close releases background resources held by the handler.
func (h *Handler) Close() {
	h.signInLimiter.Close()
	h.signUpLimiter.Close()
}
